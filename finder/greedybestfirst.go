package finder

import (
	"container/heap"
	"math"

	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/route"
)

// runGreedyBestFirst uses f = h only (spec.md §4.4), grounded on
// byul/navsys/route_finder/greedy_best_first.cpp.
func runGreedyBestFirst(f *Finder) *route.Route {
	cost := f.costFn()
	h := f.heuristicFn()

	parents := make(coord.Map[coord.Coord])
	gScore := coord.Map[float32]{f.Start: 0}
	visited := coord.NewSet(f.Start)
	open := &astarHeap{{c: f.Start, f: h(f.Start, f.Goal)}}
	heap.Init(open)

	r := route.New()
	retries := 0
	for open.Len() > 0 && retries < f.maxRetry() {
		retries++
		cur := heap.Pop(open).(astarItem).c
		if f.Debug {
			r.MarkVisited(cur)
		}
		if cur == f.Goal {
			out := reconstructFromParents(parents, f.Start, f.Goal, gScore[cur], true)
			out.TotalRetryCount = int32(retries)
			out.VisitedOrder = r.VisitedOrder
			out.VisitedCount = r.VisitedCount
			return out
		}
		for _, n := range f.Grid.Neighbors(cur.X, cur.Y) {
			if visited.Contains(n) {
				continue
			}
			step := cost(f.Grid, cur, n)
			if math.IsInf(float64(step), 1) {
				continue
			}
			visited.Add(n)
			parents[n] = cur
			gScore[n] = gScore[cur] + step
			heap.Push(open, astarItem{c: n, f: h(n, f.Goal)})
		}
	}

	out := reconstructFromParents(parents, f.Start, f.Goal, 0, false)
	out.TotalRetryCount = int32(retries)
	out.VisitedOrder = r.VisitedOrder
	out.VisitedCount = r.VisitedCount
	return out
}
