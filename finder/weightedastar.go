package finder

import (
	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/route"
)

// runWeightedAStar uses f = g + w·h, w >= 1 (spec.md §4.4), grounded on
// byul/navsys/route_finder/weighted_astar.cpp. It is A* with the
// heuristic pre-scaled by w.
func runWeightedAStar(f *Finder) *route.Route {
	w := f.Params.weightOrDefault()
	h := f.heuristicFn()
	clone := *f
	clone.HeuristicFn = func(a, b coord.Coord) float32 {
		return w * h(a, b)
	}
	return runAStar(&clone)
}
