package dstarlite

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/byuldev/byulnav/config"
	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/navgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOpenGridSucceeds(t *testing.T) {
	g := navgrid.NewFull(10, 10, navgrid.Dir8, nil)
	p := New(g, coord.New(0, 0), coord.New(9, 9))

	r := p.Find()
	require.True(t, r.Success)
	first, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, coord.New(9, 9), first)
	assert.Equal(t, coord.New(0, 0), r.Coords[0])
}

func TestFindWallBisectingGridFails(t *testing.T) {
	g := navgrid.NewFull(10, 10, navgrid.Dir4, nil)
	for y := int32(0); y < 10; y++ {
		g.Block(5, y)
	}
	p := New(g, coord.New(0, 5), coord.New(9, 5))

	r := p.Find()
	assert.False(t, r.Success)
}

func TestFindFullyEnclosedStartFails(t *testing.T) {
	g := navgrid.NewFull(10, 10, navgrid.Dir8, nil)
	start := coord.New(5, 5)
	for _, off := range coord.Offsets8 {
		g.Block(start.X+off.X, start.Y+off.Y)
	}
	p := New(g, start, coord.New(0, 0))

	r := p.Find()
	assert.False(t, r.Success)
}

func TestIncrementalRerouteAfterObstacle(t *testing.T) {
	g := navgrid.NewFull(10, 1, navgrid.Dir4, nil)
	p := New(g, coord.New(0, 0), coord.New(9, 0))

	r := p.Find()
	require.True(t, r.Success)

	g.Block(4, 0)
	p.SetStart(coord.New(0, 0))
	p.UpdateVertexRange(coord.New(4, 0), 1)
	p.ComputeShortestPath()
	r2 := p.ReconstructRoute()
	assert.False(t, r2.Success)
}

// TestIncrementalRerouteThroughNewlyOpenedCell exercises the literal
// incremental-reroute property: blocking the cell the current plan uses
// while simultaneously opening a sibling cell must reroute the plan
// through the newly-opened cell rather than failing.
func TestIncrementalRerouteThroughNewlyOpenedCell(t *testing.T) {
	g := navgrid.NewFull(5, 3, navgrid.Dir4, nil)
	g.Block(2, 0)
	g.Block(2, 1)
	// (2,2) is the only passable cell in column 2.

	p := New(g, coord.New(0, 1), coord.New(4, 1))
	r1 := p.Find()
	require.True(t, r1.Success)
	assert.Contains(t, r1.Coords, coord.New(2, 2))
	assert.NotContains(t, r1.Coords, coord.New(2, 1))

	g.Block(2, 2)
	g.Unblock(2, 1)
	p.UpdateVertexRange(coord.New(2, 2), 1)
	p.UpdateVertexRange(coord.New(2, 1), 1)
	p.ComputeShortestPath()
	r2 := p.ReconstructRoute()

	require.True(t, r2.Success)
	assert.Contains(t, r2.Coords, coord.New(2, 1))
	assert.NotContains(t, r2.Coords, coord.New(2, 2))
}

func TestReversePlanRoundTrip(t *testing.T) {
	g := navgrid.NewFull(10, 10, navgrid.Dir8, nil)
	a, b := coord.New(1, 1), coord.New(8, 8)

	pForward := New(g, a, b)
	forward := pForward.Find()
	require.True(t, forward.Success)

	pBackward := New(g, b, a)
	backward := pBackward.Find()
	require.True(t, backward.Success)

	assert.Equal(t, len(forward.Coords), len(backward.Coords))
}

func TestFindLoopReachesGoal(t *testing.T) {
	g := navgrid.NewFull(5, 5, navgrid.Dir8, nil)
	p := New(g, coord.New(0, 0), coord.New(4, 4))
	p.Find()

	var moved []coord.Coord
	p.SetMoveFunc(func(c coord.Coord) { moved = append(moved, c) })

	r := p.FindLoop(context.Background())
	assert.True(t, r.Success)
	assert.NotEmpty(t, moved)
	assert.Equal(t, coord.New(4, 4), moved[len(moved)-1])
}

func TestFindLoopHonorsContextCancellation(t *testing.T) {
	g := navgrid.NewFull(20, 20, navgrid.Dir8, nil)
	p := New(g, coord.New(0, 0), coord.New(19, 19))
	p.Find()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := p.FindLoop(ctx)
	assert.False(t, r.Success)
}

func TestFindLoopReplansOnChange(t *testing.T) {
	g := navgrid.NewFull(10, 3, navgrid.Dir8, nil)
	p := New(g, coord.New(0, 1), coord.New(9, 1))
	p.Find()

	blockedOnce := false
	p.SetChangedFunc(func() coord.List {
		if blockedOnce {
			return nil
		}
		blockedOnce = true
		g.Block(4, 1)
		return coord.List{coord.New(4, 1)}
	})

	r := p.FindLoop(context.Background())
	assert.True(t, r.Success)
}

func TestNewFullPanicsOnNilGrid(t *testing.T) {
	assert.PanicsWithValue(t, ErrNilGrid, func() {
		NewFull(nil, coord.New(0, 0), coord.New(1, 1), DefaultCost, DefaultHeuristic)
	})
}

func TestNewFullPanicsOnNilCostFunc(t *testing.T) {
	g := navgrid.New()
	assert.PanicsWithValue(t, ErrNilCostFunc, func() {
		NewFull(g, coord.New(0, 0), coord.New(1, 1), nil, DefaultHeuristic)
	})
}

func TestSetRetryCapsRejectsNonPositive(t *testing.T) {
	g := navgrid.NewFull(5, 5, navgrid.Dir8, nil)
	p := New(g, coord.New(0, 0), coord.New(1, 1))
	assert.ErrorIs(t, p.SetRetryCaps(0, 10, 10), ErrNonPositiveCap)
	assert.NoError(t, p.SetRetryCaps(50, 50, 50))
	assert.Equal(t, 50, p.ComputeMaxRetry)
}

func TestFindAndReconstructRouteReportCost(t *testing.T) {
	g := navgrid.NewFull(10, 10, navgrid.Dir8, nil)
	p := New(g, coord.New(0, 0), coord.New(9, 9))

	r := p.Find()
	require.True(t, r.Success)
	assert.InDelta(t, 9*math.Sqrt2, float64(r.Cost), 1e-3)
}

func TestApplyDefaultCapsReadsMinRetryCapFromConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retry:\n  min_default_retry_cap: 7\n"), 0o644))
	require.NoError(t, config.Init(path))
	defer func() { require.NoError(t, config.Init("")) }()

	g := navgrid.NewFull(5, 5, navgrid.Dir8, nil)
	p := New(g, coord.New(0, 0), coord.New(1, 1))
	assert.Equal(t, 7, p.ComputeMaxRetry)
}

func TestResetRebuildsButKeepsStartGoal(t *testing.T) {
	g := navgrid.NewFull(5, 5, navgrid.Dir8, nil)
	start, goal := coord.New(0, 0), coord.New(4, 4)
	p := New(g, start, goal)
	p.Find()
	require.NotNil(t, p.ProtoRoute)

	p.Reset()
	assert.Nil(t, p.ProtoRoute)
	assert.Equal(t, start, p.Start())
	assert.Equal(t, goal, p.Goal())

	r := p.Find()
	assert.True(t, r.Success)
}
