// Package navgrid implements the bounded-or-unbounded 2D terrain grid that
// D* Lite and the static finders plan over.
//
// Field names and the blocked-query injection point follow
// byul/navsys/navgrid/navgrid.h, translated from a C function-pointer +
// userdata pair into a Go interface.
package navgrid

import "github.com/byuldev/byulnav/coord"

// Terrain classifies a cell. Forbidden cells are blocked.
type Terrain int

const (
	Normal Terrain = iota
	Forbidden
)

// Cell holds per-cell metadata. Extra is free for client use (e.g. cost
// modifiers consulted by a custom CostFunc).
type Cell struct {
	Terrain Terrain
	Extra   int32
}

// DirMode selects 4- or 8-connected neighbor enumeration.
type DirMode int

const (
	Dir4 DirMode = iota
	Dir8
)

// BlockedQuery is the injectable blocked-cell predicate (spec.md §3, §6).
// It must be deterministic for a given grid snapshot.
type BlockedQuery func(g *Grid, x, y int32) bool

// BlockedByTerrain is the default BlockedQuery: a cell is blocked iff its
// terrain is Forbidden.
func BlockedByTerrain(g *Grid, x, y int32) bool {
	c, ok := g.cells[coord.Coord{X: x, Y: y}]
	if !ok {
		return false
	}
	return c.Terrain == Forbidden
}

// Grid is a bounded or unbounded 2D navigation grid. Width or Height of 0
// means unbounded on that axis.
type Grid struct {
	Width, Height int32
	Mode          DirMode

	cells     coord.Map[Cell]
	isBlocked BlockedQuery
}

// New returns a 0x0 (unbounded), Dir8 grid using BlockedByTerrain.
func New() *Grid {
	return NewFull(0, 0, Dir8, nil)
}

// NewFull returns a grid with explicit dimensions, direction mode and
// blocked-query. A nil query defaults to BlockedByTerrain.
func NewFull(width, height int32, mode DirMode, isBlocked BlockedQuery) *Grid {
	if isBlocked == nil {
		isBlocked = BlockedByTerrain
	}
	return &Grid{
		Width:     width,
		Height:    height,
		Mode:      mode,
		cells:     make(coord.Map[Cell]),
		isBlocked: isBlocked,
	}
}

// IsInside reports whether (x,y) lies within the grid's bounds. An axis
// with dimension 0 is unbounded and always admits.
func (g *Grid) IsInside(x, y int32) bool {
	if g.Width != 0 && (x < 0 || x >= g.Width) {
		return false
	}
	if g.Height != 0 && (y < 0 || y >= g.Height) {
		return false
	}
	return true
}

// Cell returns the NavCell at (x,y), or the zero-value (Normal) cell if
// none has been set.
func (g *Grid) Cell(x, y int32) Cell {
	return g.cells.GetOrDefault(coord.Coord{X: x, Y: y}, Cell{Terrain: Normal})
}

// SetCell stores the given cell at (x,y), regardless of bounds. Used by
// obstacle stamping and by clients that want custom per-cell cost data.
func (g *Grid) SetCell(x, y int32, c Cell) {
	g.cells[coord.Coord{X: x, Y: y}] = c
}

// Block marks (x,y) as Forbidden. Returns false and makes no change if
// (x,y) is out of bounds.
func (g *Grid) Block(x, y int32) bool {
	if !g.IsInside(x, y) {
		return false
	}
	c := g.Cell(x, y)
	c.Terrain = Forbidden
	g.SetCell(x, y, c)
	return true
}

// Unblock clears the Forbidden terrain at (x,y), restoring Normal. Returns
// false and makes no change if (x,y) is out of bounds.
func (g *Grid) Unblock(x, y int32) bool {
	if !g.IsInside(x, y) {
		return false
	}
	c := g.Cell(x, y)
	c.Terrain = Normal
	g.SetCell(x, y, c)
	return true
}

// IsBlocked delegates to the grid's injected BlockedQuery.
func (g *Grid) IsBlocked(x, y int32) bool {
	return g.isBlocked(g, x, y)
}

// SetBlockedQuery overrides the blocked-cell predicate.
func (g *Grid) SetBlockedQuery(q BlockedQuery) {
	if q == nil {
		q = BlockedByTerrain
	}
	g.isBlocked = q
}

// Clear drops all stored cell data.
func (g *Grid) Clear() {
	g.cells = make(coord.Map[Cell])
}

func (g *Grid) offsets() []coord.Coord {
	if g.Mode == Dir4 {
		return coord.Offsets4[:]
	}
	return coord.Offsets8[:]
}

// NeighborsAll returns every in-bounds neighbor of (x,y), blocked or not.
// An out-of-bounds origin yields an empty slice.
func (g *Grid) NeighborsAll(x, y int32) coord.List {
	if !g.IsInside(x, y) {
		return nil
	}
	out := make(coord.List, 0, len(g.offsets()))
	for _, off := range g.offsets() {
		nx, ny := x+off.X, y+off.Y
		if g.IsInside(nx, ny) {
			out = append(out, coord.Coord{X: nx, Y: ny})
		}
	}
	return out
}

// Neighbors returns the passable (non-blocked) in-bounds neighbors of
// (x,y).
func (g *Grid) Neighbors(x, y int32) coord.List {
	all := g.NeighborsAll(x, y)
	out := make(coord.List, 0, len(all))
	for _, c := range all {
		if !g.IsBlocked(c.X, c.Y) {
			out = append(out, c)
		}
	}
	return out
}

// NeighborAtBearing returns the neighbor of (x,y) whose bearing from
// (x,y) is closest to deg, ties broken by the static Dir8 order
// E, NE, N, NW, W, SW, S, SE (spec.md §4.1). Returns (Coord{}, false) if
// (x,y) is out of bounds.
func (g *Grid) NeighborAtBearing(x, y int32, deg float64) (coord.Coord, bool) {
	if !g.IsInside(x, y) {
		return coord.Coord{}, false
	}
	origin := coord.Coord{X: x, Y: y}
	best := coord.Coord{}
	found := false
	bestDelta := -1.0
	for _, off := range coord.Offsets8 {
		nx, ny := x+off.X, y+off.Y
		if !g.IsInside(nx, ny) {
			continue
		}
		cand := coord.Coord{X: nx, Y: ny}
		bearing := coord.DegreeBetween(origin, cand)
		delta := angularDistance(bearing, deg)
		if !found || delta < bestDelta {
			found = true
			bestDelta = delta
			best = cand
		}
	}
	return best, found
}

func angularDistance(a, b float64) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}
