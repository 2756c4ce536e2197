package route

import (
	"testing"

	"github.com/byuldev/byulnav/coord"
	"github.com/stretchr/testify/assert"
)

func TestAppendBuildsPath(t *testing.T) {
	r := New()
	r.Append(coord.New(0, 0))
	r.Append(coord.New(1, 0))
	r.Append(coord.New(2, 0))
	assert.Equal(t, 3, r.Len())
	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, coord.New(2, 0), last)
}

func TestAppendUpdatesRunningDirectionAvg(t *testing.T) {
	r := New()
	r.Append(coord.New(0, 0))
	r.Append(coord.New(1, 0))
	r.Append(coord.New(2, 0))
	assert.InDelta(t, 1.0, r.RunningDirectionAvg[0], 1e-6)
	assert.InDelta(t, 0.0, r.RunningDirectionAvg[1], 1e-6)
	assert.Equal(t, int32(2), r.VecCount)
}

func TestMarkVisitedCountsRepeats(t *testing.T) {
	r := New()
	c := coord.New(1, 1)
	r.MarkVisited(c)
	r.MarkVisited(c)
	assert.Equal(t, int32(2), r.VisitedCount[c])
	assert.Len(t, r.VisitedOrder, 2)
}

func TestDirectionOutOfRange(t *testing.T) {
	r := New()
	r.Append(coord.New(0, 0))
	_, _, ok := r.Direction(0)
	assert.False(t, ok)
}

func TestDirectionUnitVector(t *testing.T) {
	r := New()
	r.Append(coord.New(0, 0))
	r.Append(coord.New(0, 5))
	dx, dy, ok := r.Direction(0)
	assert.True(t, ok)
	assert.InDelta(t, 0.0, dx, 1e-9)
	assert.InDelta(t, 1.0, dy, 1e-9)
}

func TestReverseRoundTrip(t *testing.T) {
	r := New()
	r.Append(coord.New(0, 0))
	r.Append(coord.New(1, 0))
	r.Append(coord.New(2, 0))
	r.Success = true
	r.Cost = 2

	rev := r.Reverse()
	assert.Equal(t, coord.New(2, 0), rev.Coords[0])
	assert.Equal(t, coord.New(0, 0), rev.Coords[2])
	assert.Equal(t, r.Cost, rev.Cost)
	assert.Equal(t, r.Success, rev.Success)

	roundTrip := rev.Reverse()
	assert.Equal(t, r.Coords, roundTrip.Coords)
}
