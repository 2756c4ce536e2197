package coord

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManhattan(t *testing.T) {
	assert.Equal(t, 7.0, Manhattan(New(0, 0), New(3, 4)))
	assert.Equal(t, 0.0, Manhattan(New(5, 5), New(5, 5)))
}

func TestEuclidean(t *testing.T) {
	assert.InDelta(t, 5.0, Euclidean(New(0, 0), New(3, 4)), 1e-9)
}

func TestChebyshev(t *testing.T) {
	assert.Equal(t, int32(4), Chebyshev(New(0, 0), New(3, 4)))
	assert.Equal(t, int32(3), Chebyshev(New(0, 0), New(3, -2)))
}

func TestDegreeBetweenCardinalDirections(t *testing.T) {
	assert.InDelta(t, 0.0, DegreeBetween(New(0, 0), New(1, 0)), 1e-9)
	assert.InDelta(t, 90.0, DegreeBetween(New(0, 0), New(0, 1)), 1e-9)
	assert.InDelta(t, 180.0, DegreeBetween(New(0, 0), New(-1, 0)), 1e-9)
	assert.InDelta(t, 270.0, DegreeBetween(New(0, 0), New(0, -1)), 1e-9)
}

func TestDegreeBetweenSameCoordIsNaN(t *testing.T) {
	d := DegreeBetween(New(2, 2), New(2, 2))
	assert.True(t, math.IsNaN(d))
}

func TestHashStableAndDeterministic(t *testing.T) {
	c := New(7, -3)
	assert.Equal(t, c.Hash(), c.Hash())
	assert.NotEqual(t, New(7, -3).Hash(), New(-3, 7).Hash())
}
