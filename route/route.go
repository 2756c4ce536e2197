// Package route defines the ordered coord sequence returned by D* Lite and
// the static finders, following byul/navsys/route/route.h.
package route

import (
	"math"

	"github.com/byuldev/byulnav/coord"
)

// Route is the outcome of a planning call: the planned path plus the
// debug trace and diagnostics described in spec.md §3.
type Route struct {
	Coords       coord.List
	VisitedOrder coord.List
	VisitedCount coord.Map[int32]

	Cost            float32
	Success         bool
	TotalRetryCount int32

	// RunningDirectionAvg accumulates a running average unit vector of
	// travel direction, updated on every Append.
	RunningDirectionAvg [2]float32
	VecCount            int32
}

// New returns an empty, unsuccessful route.
func New() *Route {
	return &Route{
		VisitedCount: make(coord.Map[int32]),
	}
}

// NewWithCost returns an empty route carrying the given cost.
func NewWithCost(cost float32) *Route {
	r := New()
	r.Cost = cost
	return r
}

// Append adds c to the planned path and folds its direction from the
// previous coord into RunningDirectionAvg.
func (r *Route) Append(c coord.Coord) {
	if n := len(r.Coords); n > 0 {
		prev := r.Coords[n-1]
		dx := float32(c.X - prev.X)
		dy := float32(c.Y - prev.Y)
		norm := float32(math.Hypot(float64(dx), float64(dy)))
		if norm > 0 {
			dx /= norm
			dy /= norm
			r.VecCount++
			n := float32(r.VecCount)
			r.RunningDirectionAvg[0] += (dx - r.RunningDirectionAvg[0]) / n
			r.RunningDirectionAvg[1] += (dy - r.RunningDirectionAvg[1]) / n
		}
	}
	r.Coords = append(r.Coords, c)
}

// MarkVisited records a diagnostic visit to c, appending to VisitedOrder
// and incrementing VisitedCount. Callers gate this on debug mode.
func (r *Route) MarkVisited(c coord.Coord) {
	r.VisitedOrder = append(r.VisitedOrder, c)
	r.VisitedCount[c] = r.VisitedCount.GetOrDefault(c, 0) + 1
}

// Last returns the final coord on the planned path and whether one exists.
func (r *Route) Last() (coord.Coord, bool) {
	if len(r.Coords) == 0 {
		return coord.Coord{}, false
	}
	return r.Coords[len(r.Coords)-1], true
}

// Len returns the number of coords on the planned path.
func (r *Route) Len() int {
	return len(r.Coords)
}

// Direction returns the unit direction vector from Coords[i] to
// Coords[i+1]. The second return is false if i is out of range.
func (r *Route) Direction(i int) (dx, dy float64, ok bool) {
	if i < 0 || i+1 >= len(r.Coords) {
		return 0, 0, false
	}
	a, b := r.Coords[i], r.Coords[i+1]
	ddx := float64(b.X - a.X)
	ddy := float64(b.Y - a.Y)
	norm := math.Hypot(ddx, ddy)
	if norm == 0 {
		return 0, 0, true
	}
	return ddx / norm, ddy / norm, true
}

// Reverse returns a new Route with the coord order reversed, used by the
// round-trip property in spec.md §8: find(A,B) vs. find(B,A).
func (r *Route) Reverse() *Route {
	out := New()
	out.Cost = r.Cost
	out.Success = r.Success
	out.Coords = make(coord.List, len(r.Coords))
	for i, c := range r.Coords {
		out.Coords[len(r.Coords)-1-i] = c
	}
	return out
}
