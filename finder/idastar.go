package finder

import (
	"math"

	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/route"
)

// runIDAStar iteratively deepens the f-threshold (spec.md §4.4),
// grounded on byul/navsys/route_finder/ida_star.cpp: repeated bounded
// Dijkstra-like sweeps, raising the threshold to the smallest
// over-threshold f seen, until the goal is found or retries run out.
// The Manhattan distance is the documented default heuristic.
func runIDAStar(f *Finder) *route.Route {
	cost := f.costFn()
	h := f.heuristicFn()
	if f.HeuristicFn == nil {
		h = DefaultManhattanHeuristic
	}

	threshold := float64(h(f.Start, f.Goal))
	bestCoord := f.Start
	bestF := math.Inf(1)

	r := route.New()
	retry := 0
	maxRetry := f.maxRetry()

	for retry < maxRetry {
		nextThreshold := math.Inf(1)
		gScore := coord.Map[float32]{f.Start: 0}
		parents := make(coord.Map[coord.Coord])
		frontier := coord.List{f.Start}

		found := false
		var final coord.Coord

	sweep:
		for len(frontier) > 0 && retry < maxRetry {
			retry++
			cur := frontier[0]
			frontier = frontier[1:]

			g := gScore[cur]
			fScore := float64(g) + float64(h(cur, f.Goal))

			if fScore > threshold {
				if fScore < nextThreshold {
					nextThreshold = fScore
				}
				continue
			}
			if fScore < bestF {
				bestF = fScore
				bestCoord = cur
			}
			if f.Debug {
				r.MarkVisited(cur)
			}
			if cur == f.Goal {
				found = true
				final = cur
				break sweep
			}

			for _, n := range f.Grid.Neighbors(cur.X, cur.Y) {
				step := cost(f.Grid, cur, n)
				if math.IsInf(float64(step), 1) {
					continue
				}
				newCost := g + step
				if prev, ok := gScore[n]; ok && newCost >= prev {
					continue
				}
				gScore[n] = newCost
				parents[n] = cur
				frontier = append(frontier, n)
			}
		}

		if found {
			out := reconstructFromParents(parents, f.Start, final, gScore[final], true)
			out.TotalRetryCount = int32(retry)
			out.VisitedOrder = r.VisitedOrder
			out.VisitedCount = r.VisitedCount
			return out
		}
		if math.IsInf(nextThreshold, 1) {
			out := reconstructFromParents(parents, f.Start, bestCoord, float32(bestF), bestCoord == f.Goal)
			out.TotalRetryCount = int32(retry)
			out.VisitedOrder = r.VisitedOrder
			out.VisitedCount = r.VisitedCount
			return out
		}
		threshold = nextThreshold
	}

	out := route.New()
	out.Append(f.Start)
	out.Success = false
	out.TotalRetryCount = int32(retry)
	return out
}
