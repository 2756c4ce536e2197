package finder

import (
	"container/heap"
	"math"

	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/route"
)

// astarItem pairs a coord with its f-score in the open list.
type astarItem struct {
	c coord.Coord
	f float32
}

type astarHeap []astarItem

func (h astarHeap) Len() int            { return len(h) }
func (h astarHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h astarHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *astarHeap) Push(x any)         { *h = append(*h, x.(astarItem)) }
func (h *astarHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// runAStar implements spec.md §4.4: f = g + h, with closed-set pruning by
// best-known g, grounded on byul/navsys/route_finder/modules/astar.cpp.
func runAStar(f *Finder) *route.Route {
	cost := f.costFn()
	h := f.heuristicFn()

	gScore := make(coord.Map[float32])
	parents := make(coord.Map[coord.Coord])
	closed := make(coord.Set)

	gScore[f.Start] = 0
	open := &astarHeap{{c: f.Start, f: h(f.Start, f.Goal)}}
	heap.Init(open)

	r := route.New()
	retries := 0
	for open.Len() > 0 && retries < f.maxRetry() {
		retries++
		cur := heap.Pop(open).(astarItem).c
		if closed.Contains(cur) {
			continue
		}
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
		closed.Add(cur)

		for _, n := range f.Grid.Neighbors(cur.X, cur.Y) {
			if closed.Contains(n) {
				continue
			}
			step := cost(f.Grid, cur, n)
			if math.IsInf(float64(step), 1) {
				continue
			}
			tentative := gScore[cur] + step
			best, known := gScore[n]
			if !known || tentative < best {
				gScore[n] = tentative
				parents[n] = cur
				heap.Push(open, astarItem{c: n, f: tentative + h(n, f.Goal)})
			}
		}
	}

	out := reconstructFromParents(parents, f.Start, f.Goal, 0, false)
	out.TotalRetryCount = int32(retries)
	out.VisitedOrder = r.VisitedOrder
	out.VisitedCount = r.VisitedCount
	return out
}
