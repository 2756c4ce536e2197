// Package coord defines the 2D integer coordinate used across navgrid,
// route, pqueue, dstarlite and finder, plus the map/set/list collections
// keyed on it.
package coord

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Coord is a point on the integer grid.
type Coord struct {
	X, Y int32
}

// New is a convenience constructor.
func New(x, y int32) Coord {
	return Coord{X: x, Y: y}
}

// Hash is collision-tolerant and stable across runs. It is not a Go
// map hash (maps already hash Coord structurally); it exists for callers
// that need a portable numeric fingerprint, e.g. for debug output or for
// porting fixtures from the original C implementation.
func (c Coord) Hash() uint32 {
	return uint32(c.X)*73856093 ^ uint32(c.Y)*19349663
}

// Manhattan returns |dx| + |dy| between a and b.
func Manhattan(a, b Coord) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Abs(dx) + math.Abs(dy)
}

// Euclidean returns the straight-line distance between a and b, and is
// the default finder/dstarlite cost and heuristic (the per-step cost of
// a diagonal move is √2, an orthogonal move 1.0).
func Euclidean(a, b Coord) float64 {
	va := r2.Vec{X: float64(a.X), Y: float64(a.Y)}
	vb := r2.Vec{X: float64(b.X), Y: float64(b.Y)}
	return r2.Norm(r2.Sub(va, vb))
}

// Chebyshev returns max(|dx|, |dy|) between a and b.
func Chebyshev(a, b Coord) int32 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// DegreeBetween returns the bearing in [0, 360) from a to b using
// atan2(b.y-a.y, b.x-a.x). It is NaN when a == b, matching the original
// coord_degree contract (spec.md §3, §9) rather than the inconsistent
// zero-on-equal copy found elsewhere in the source tree.
func DegreeBetween(a, b Coord) float64 {
	if a == b {
		return math.NaN()
	}
	rad := math.Atan2(float64(b.Y-a.Y), float64(b.X-a.X))
	deg := rad * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
