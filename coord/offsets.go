package coord

// Offsets4 are the four axial neighbor offsets (E, N, W, S order).
var Offsets4 = [4]Coord{
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
}

// Offsets8 are the eight neighbor offsets in the static tie-break order
// mandated by spec.md §4.1: E, NE, N, NW, W, SW, S, SE.
var Offsets8 = [8]Coord{
	{X: 1, Y: 0},   // E
	{X: 1, Y: -1},  // NE
	{X: 0, Y: -1},  // N
	{X: -1, Y: -1}, // NW
	{X: -1, Y: 0},  // W
	{X: -1, Y: 1},  // SW
	{X: 0, Y: 1},   // S
	{X: 1, Y: 1},   // SE
}
