package finder

import (
	"math"

	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/route"
)

// rtaIterativeEval performs a bounded greedy lookahead from cur,
// returning the f-value reached after descending up to maxDepth steps
// by always taking the locally cheapest g+cost+h neighbor.
func rtaIterativeEval(f *Finder, cur coord.Coord, g float32, maxDepth int) float32 {
	cost := f.costFn()
	h := f.heuristicFn()

	for d := 0; d < maxDepth; d++ {
		if cur == f.Goal {
			break
		}
		var best coord.Coord
		bestF := float32(math.Inf(1))
		found := false

		for _, n := range f.Grid.Neighbors(cur.X, cur.Y) {
			c := cost(f.Grid, cur, n)
			if math.IsInf(float64(c), 1) {
				continue
			}
			ff := g + c + h(n, f.Goal)
			if ff < bestF {
				bestF = ff
				best = n
				found = true
			}
		}
		if !found {
			break
		}
		g += cost(f.Grid, cur, best)
		cur = best
	}

	return g + h(cur, f.Goal)
}

// runRTAStar commits to a single locally-best step per retry, chosen by
// a bounded lookahead (spec.md §4.4), grounded on
// byul/navsys/route_finder/rta_star.cpp.
func runRTAStar(f *Finder) *route.Route {
	cost := f.costFn()
	depth := f.Params.depthOrDefault()

	r := route.New()
	cur := f.Start
	r.Append(cur)
	visited := coord.NewSet(cur)

	retry := 0
	maxRetry := f.maxRetry()
	for cur != f.Goal && retry < maxRetry {
		retry++
		var best coord.Coord
		bestF := float32(math.Inf(1))
		found := false

		for _, n := range f.Grid.Neighbors(cur.X, cur.Y) {
			if visited.Contains(n) {
				continue
			}
			eval := rtaIterativeEval(f, n, 0, depth-1)
			if eval < bestF {
				bestF = eval
				best = n
				found = true
			}
		}
		if !found {
			break
		}

		r.Cost += cost(f.Grid, cur, best)
		cur = best
		r.Append(cur)
		visited.Add(cur)
		if f.Debug {
			r.MarkVisited(cur)
		}
	}

	r.Success = cur == f.Goal
	r.TotalRetryCount = int32(retry)
	return r
}
