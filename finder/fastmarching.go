package finder

import (
	"math"

	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/route"
	"gonum.org/v1/gonum/floats"
)

// fmmState tags a cell's arrival-time status during the sweep.
type fmmState int

const (
	fmmFar fmmState = iota
	fmmNarrow
	fmmKnown
)

type fmmCell struct {
	state fmmState
	value float32
}

// eikonalUpdate solves the Eikonal quadratic for the arrival time at a
// cell given the best-known times along each axis (a, b) and the local
// step cost h, grounded on the update in
// byul/route_finder/modules/fast_marching.cpp. gonum/floats picks the
// smaller axis minimum for the degenerate (one-sided) branch.
func eikonalUpdate(a, b, h float64) float64 {
	if math.Abs(a-b) >= h {
		return floats.Min([]float64{a, b}) + h
	}
	return (a + b + math.Sqrt(2*h*h-(a-b)*(a-b))) / 2.0
}

// runFastMarching expands a narrow band outward from start by
// increasing Eikonal arrival time, then backtracks from goal by
// descending the arrival-time field (spec.md §4.4). If goal never
// received an arrival time, it backtracks from the last cell expanded
// and reports Success=false. It is grounded on byul/route_finder/modules/fast_marching.cpp.
func runFastMarching(f *Finder) *route.Route {
	cost := f.costFn()

	cells := make(map[coord.Coord]*fmmCell)
	var visitOrder coord.List

	radius := float32(coord.Euclidean(f.Start, f.Goal)) * 1.5

	band := make(map[coord.Coord]float32)
	cells[f.Start] = &fmmCell{state: fmmNarrow, value: 0}
	band[f.Start] = 0

	retry := 0
	maxRetry := f.maxRetry()

	for len(band) > 0 && retry < maxRetry {
		retry++

		var cur coord.Coord
		bestVal := float32(math.Inf(1))
		for c, v := range band {
			if v < bestVal {
				bestVal = v
				cur = c
			}
		}
		delete(band, cur)

		cc, ok := cells[cur]
		if !ok {
			cc = &fmmCell{state: fmmKnown, value: float32(math.Inf(1))}
			cells[cur] = cc
		}
		cc.state = fmmKnown

		if cc.value > radius {
			continue
		}
		visitOrder = append(visitOrder, cur)

		for _, n := range f.Grid.Neighbors(cur.X, cur.Y) {
			if nc, ok := cells[n]; ok && nc.state == fmmKnown {
				continue
			}

			h := float64(cost(f.Grid, cur, n))

			minX := math.MaxFloat64
			minY := math.MaxFloat64
			if c, ok := cells[coord.New(n.X-1, n.Y)]; ok {
				minX = math.Min(minX, float64(c.value))
			}
			if c, ok := cells[coord.New(n.X+1, n.Y)]; ok {
				minX = math.Min(minX, float64(c.value))
			}
			if c, ok := cells[coord.New(n.X, n.Y-1)]; ok {
				minY = math.Min(minY, float64(c.value))
			}
			if c, ok := cells[coord.New(n.X, n.Y+1)]; ok {
				minY = math.Min(minY, float64(c.value))
			}

			t := eikonalUpdate(minX, minY, h)
			if t > float64(radius) {
				continue
			}

			nc, known := cells[n]
			if !known || float32(t) < nc.value {
				cells[n] = &fmmCell{state: fmmNarrow, value: float32(t)}
				band[n] = float32(t)
			}
		}
	}

	r := route.New()
	if f.Debug {
		for _, c := range visitOrder {
			r.MarkVisited(c)
		}
	}

	goal := f.Goal
	_, ok := cells[goal]
	fallback := false
	if !ok {
		if len(visitOrder) == 0 {
			r.Success = false
			r.TotalRetryCount = int32(retry)
			return r
		}
		goal = visitOrder[len(visitOrder)-1]
		fallback = true
	}

	var path coord.List
	cur := goal
	path = append(path, cur)
	for cur != f.Start {
		var best coord.Coord
		bestVal := float32(math.Inf(1))
		found := false
		for _, n := range f.Grid.Neighbors(cur.X, cur.Y) {
			nc, ok := cells[n]
			if !ok {
				continue
			}
			if nc.value < bestVal {
				bestVal = nc.value
				best = n
				found = true
			}
		}
		if !found {
			r.Success = false
			r.TotalRetryCount = int32(retry)
			return r
		}
		path = append(path, best)
		cur = best
	}

	for i := len(path) - 1; i >= 0; i-- {
		r.Append(path[i])
	}
	r.TotalRetryCount = int32(retry)
	r.Success = !fallback
	return r
}
