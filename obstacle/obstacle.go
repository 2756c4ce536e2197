// Package obstacle models a bounded region of blocked cells that can
// be stamped onto, or lifted from, a navgrid.Grid, grounded on
// byul/navsys/obstacle/obstacle_core.h.
package obstacle

import (
	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/navgrid"
)

// Obstacle is a region of blocked Cells, stored as absolute grid
// coords; Origin, Width and Height bound where Block may place them.
// It carries no terrain data of its own; applying it mutates a Grid's
// blocked cells directly.
type Obstacle struct {
	Origin coord.Coord
	Width  int32
	Height int32
	Cells  coord.Set
}

// New returns an empty obstacle anchored at the origin.
func New() *Obstacle {
	return &Obstacle{Cells: coord.NewSet()}
}

// NewFull returns an empty obstacle with an explicit origin and bounds.
func NewFull(x0, y0, width, height int32) *Obstacle {
	return &Obstacle{
		Origin: coord.New(x0, y0),
		Width:  width,
		Height: height,
		Cells:  coord.NewSet(),
	}
}

// Clear removes every blocked cell without changing origin or bounds.
func (o *Obstacle) Clear() {
	o.Cells = coord.NewSet()
}

// IsInside reports whether (x, y) falls within the obstacle's bounds.
// A zero-sized obstacle (Width <= 0 or Height <= 0) is treated as
// unbounded, matching an obstacle created with New.
func (o *Obstacle) IsInside(x, y int32) bool {
	if o.Width <= 0 || o.Height <= 0 {
		return true
	}
	return x >= o.Origin.X && x < o.Origin.X+o.Width &&
		y >= o.Origin.Y && y < o.Origin.Y+o.Height
}

// Block marks (x, y) as blocked within the obstacle's own coordinate
// space. It is a no-op outside the obstacle's bounds.
func (o *Obstacle) Block(x, y int32) bool {
	if !o.IsInside(x, y) {
		return false
	}
	o.Cells.Add(coord.New(x, y))
	return true
}

// Unblock clears (x, y) from the obstacle.
func (o *Obstacle) Unblock(x, y int32) bool {
	c := coord.New(x, y)
	if !o.Cells.Contains(c) {
		return false
	}
	o.Cells.Remove(c)
	return true
}

// IsBlocked reports whether (x, y) is one of the obstacle's blocked
// cells.
func (o *Obstacle) IsBlocked(x, y int32) bool {
	return o.Cells.Contains(coord.New(x, y))
}

// ApplyTo stamps every blocked cell of o onto g.
func (o *Obstacle) ApplyTo(g *navgrid.Grid) {
	for c := range o.Cells {
		g.Block(c.X, c.Y)
	}
}

// RemoveFrom lifts every blocked cell of o from g.
func (o *Obstacle) RemoveFrom(g *navgrid.Grid) {
	for c := range o.Cells {
		g.Unblock(c.X, c.Y)
	}
}
