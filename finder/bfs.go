package finder

import (
	"math"

	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/route"
)

// runBFS uses a FIFO frontier; path cost is whatever f.CostFn reports per
// step, accumulated alongside the parent chain (spec.md §4.4), grounded on
// byul/navsys/route_finder/bfs.cpp.
func runBFS(f *Finder) *route.Route {
	cost := f.costFn()

	parents := make(coord.Map[coord.Coord])
	gScore := coord.Map[float32]{f.Start: 0}
	visited := coord.NewSet(f.Start)
	queue := coord.List{f.Start}

	r := route.New()
	retries := 0
	for len(queue) > 0 && retries < f.maxRetry() {
		retries++
		cur := queue[0]
		queue = queue[1:]
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
			queue = append(queue, n)
		}
	}

	out := reconstructFromParents(parents, f.Start, f.Goal, 0, false)
	out.TotalRetryCount = int32(retries)
	out.VisitedOrder = r.VisitedOrder
	out.VisitedCount = r.VisitedCount
	return out
}
