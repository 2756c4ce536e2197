package finder

import (
	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/route"
)

// zeroHeuristic always returns 0, turning A* into Dijkstra.
func zeroHeuristic(a, b coord.Coord) float32 { return 0 }

// runDijkstra is A* with h ≡ 0 (spec.md §4.4), grounded on
// byul/navsys/route_finder/dijkstra.cpp.
func runDijkstra(f *Finder) *route.Route {
	clone := *f
	clone.HeuristicFn = zeroHeuristic
	return runAStar(&clone)
}
