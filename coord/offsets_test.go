package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsets4Count(t *testing.T) {
	assert.Len(t, Offsets4, 4)
}

func TestOffsets8TieBreakOrder(t *testing.T) {
	expected := [8]Coord{
		{X: 1, Y: 0},
		{X: 1, Y: -1},
		{X: 0, Y: -1},
		{X: -1, Y: -1},
		{X: -1, Y: 0},
		{X: -1, Y: 1},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
	}
	assert.Equal(t, expected, Offsets8)
}
