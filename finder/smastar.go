package finder

import (
	"math"

	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/route"
	"gonum.org/v1/gonum/floats"
)

// runSMAStar is A* with a bounded frontier: once the open set exceeds
// Params.MemoryBudget, the worst (highest-f) entries are evicted
// (spec.md §4.4), grounded on
// byul/navsys/route_finder/modules/sma_star.cpp. Eviction uses
// gonum/floats to locate the worst-scoring entries.
func runSMAStar(f *Finder) *route.Route {
	cost := f.costFn()
	h := f.heuristicFn()
	budget := f.Params.memoryBudgetOrDefault()

	gScore := coord.Map[float32]{f.Start: 0}
	parents := make(coord.Map[coord.Coord])

	var frontierCoords []coord.Coord
	var frontierF []float64
	frontierCoords = append(frontierCoords, f.Start)
	frontierF = append(frontierF, float64(h(f.Start, f.Goal)))

	r := route.New()
	if f.Debug {
		r.MarkVisited(f.Start)
	}

	var final coord.Coord
	found := false
	retry := 0
	maxRetry := f.maxRetry()

	for len(frontierCoords) > 0 && retry < maxRetry {
		retry++

		bestIdx := 0
		bestF := frontierF[0]
		for i, fv := range frontierF {
			if fv < bestF {
				bestF = fv
				bestIdx = i
			}
		}
		cur := frontierCoords[bestIdx]
		frontierCoords = append(frontierCoords[:bestIdx], frontierCoords[bestIdx+1:]...)
		frontierF = append(frontierF[:bestIdx], frontierF[bestIdx+1:]...)

		if cur == f.Goal {
			final = cur
			found = true
			break
		}

		g := gScore[cur]
		for _, n := range f.Grid.Neighbors(cur.X, cur.Y) {
			step := cost(f.Grid, cur, n)
			if math.IsInf(float64(step), 1) {
				continue
			}
			newCost := g + step
			if known, ok := gScore[n]; ok && newCost >= known {
				continue
			}
			gScore[n] = newCost
			parents[n] = cur
			frontierCoords = append(frontierCoords, n)
			frontierF = append(frontierF, float64(newCost+h(n, f.Goal)))
			if f.Debug {
				r.MarkVisited(n)
			}
		}

		excess := len(frontierF) - budget
		for excess > 0 && len(frontierF) > 0 {
			worst := floats.MaxIdx(frontierF)
			frontierCoords = append(frontierCoords[:worst], frontierCoords[worst+1:]...)
			frontierF = append(frontierF[:worst], frontierF[worst+1:]...)
			excess--
		}
	}

	if !found && len(frontierCoords) > 0 {
		bestIdx := floats.MinIdx(frontierF)
		final = frontierCoords[bestIdx]
	}

	cost32 := float32(0)
	if c, ok := gScore[final]; ok {
		cost32 = c
	}
	out := reconstructFromParents(parents, f.Start, final, cost32, found)
	out.TotalRetryCount = int32(retry)
	out.VisitedOrder = r.VisitedOrder
	out.VisitedCount = r.VisitedCount
	return out
}
