package navgrid

import (
	"testing"

	"github.com/byuldev/byulnav/coord"
	"github.com/stretchr/testify/assert"
)

func TestBlockUnblock(t *testing.T) {
	g := New()
	assert.False(t, g.IsBlocked(2, 2))
	assert.True(t, g.Block(2, 2))
	assert.True(t, g.IsBlocked(2, 2))
	assert.True(t, g.Unblock(2, 2))
	assert.False(t, g.IsBlocked(2, 2))
}

func TestBlockOutOfBoundsFails(t *testing.T) {
	g := NewFull(5, 5, Dir8, nil)
	assert.False(t, g.Block(10, 10))
}

func TestIsInsideBoundedGrid(t *testing.T) {
	g := NewFull(5, 5, Dir8, nil)
	assert.True(t, g.IsInside(0, 0))
	assert.True(t, g.IsInside(4, 4))
	assert.False(t, g.IsInside(5, 0))
	assert.False(t, g.IsInside(-1, 0))
}

func TestIsInsideUnboundedGrid(t *testing.T) {
	g := New()
	assert.True(t, g.IsInside(1000, -1000))
}

func TestNeighborsDir4ExcludesBlocked(t *testing.T) {
	g := NewFull(5, 5, Dir4, nil)
	g.Block(3, 2)
	neighbors := g.Neighbors(2, 2)
	assert.Len(t, neighbors, 3)
	assert.False(t, neighbors.Contains(coord.New(3, 2)))
}

func TestNeighborsAllIncludesBlocked(t *testing.T) {
	g := NewFull(5, 5, Dir4, nil)
	g.Block(3, 2)
	all := g.NeighborsAll(2, 2)
	assert.Len(t, all, 4)
}

func TestNeighborsDir8CountInInterior(t *testing.T) {
	g := NewFull(5, 5, Dir8, nil)
	assert.Len(t, g.NeighborsAll(2, 2), 8)
}

func TestNeighborAtBearingPicksClosest(t *testing.T) {
	g := NewFull(5, 5, Dir8, nil)
	c, ok := g.NeighborAtBearing(2, 2, 0)
	assert.True(t, ok)
	assert.Equal(t, int32(3), c.X)
	assert.Equal(t, int32(2), c.Y)
}

func TestCustomBlockedQuery(t *testing.T) {
	g := NewFull(5, 5, Dir8, func(g *Grid, x, y int32) bool {
		return x == 1 && y == 1
	})
	assert.True(t, g.IsBlocked(1, 1))
	assert.False(t, g.IsBlocked(0, 0))
}
