package finder

import (
	"math"

	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/route"
)

// runFringeSearch sweeps an expanding f-threshold band of width
// Params.Delta, deferring any node whose f exceeds the band to the
// next sweep (spec.md §4.4), grounded on
// byul/navsys/route_finder/fringe_search.cpp.
func runFringeSearch(f *Finder) *route.Route {
	cost := f.costFn()
	h := f.heuristicFn()
	delta := f.Params.deltaOrDefault()

	threshold := h(f.Start, f.Goal)
	gScore := coord.Map[float32]{f.Start: 0}
	parents := make(coord.Map[coord.Coord])

	frontier := coord.List{f.Start}
	var nextFrontier coord.List

	r := route.New()
	if f.Debug {
		r.MarkVisited(f.Start)
	}

	var final coord.Coord
	haveFinal := false
	found := false
	retry := 0
	maxRetry := f.maxRetry()

	for len(frontier) > 0 && retry < maxRetry {
		nextThreshold := float32(math.Inf(1))
		expanded := false

		for len(frontier) > 0 && retry < maxRetry {
			retry++
			cur := frontier[0]
			frontier = frontier[1:]

			g := gScore[cur]
			fScore := g + h(cur, f.Goal)

			if fScore > threshold+delta {
				if fScore < nextThreshold {
					nextThreshold = fScore
				}
				nextFrontier = append(nextFrontier, cur)
				continue
			}

			if !haveFinal || fScore < threshold+delta {
				final = cur
				haveFinal = true
			}

			if cur == f.Goal {
				found = true
				break
			}

			for _, n := range f.Grid.Neighbors(cur.X, cur.Y) {
				step := cost(f.Grid, cur, n)
				if math.IsInf(float64(step), 1) {
					continue
				}
				newG := g + step
				if known, ok := gScore[n]; ok && newG >= known {
					continue
				}
				gScore[n] = newG
				parents[n] = cur
				frontier = append(frontier, n)
				if f.Debug {
					r.MarkVisited(n)
				}
				expanded = true
			}
		}

		frontier, nextFrontier = nextFrontier, nil

		if found || len(frontier) == 0 || !expanded {
			break
		}
		if nextThreshold <= threshold+delta {
			threshold += 1.0
		} else {
			threshold = nextThreshold
		}
	}

	cost32 := float32(0)
	if haveFinal {
		cost32 = gScore[final]
	}
	out := reconstructFromParents(parents, f.Start, final, cost32, found)
	if !haveFinal {
		out.Success = false
	}
	out.TotalRetryCount = int32(retry)
	out.VisitedOrder = r.VisitedOrder
	out.VisitedCount = r.VisitedCount
	return out
}
