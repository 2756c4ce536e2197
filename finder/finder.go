// Package finder implements the one-shot static planners that share
// D* Lite's cost/heuristic contract (spec.md §4.4), plus the Finder
// configuration struct and Run dispatcher (spec.md §4.5) that selects one
// by tag.
//
// Each finder is grounded on a single file under
// byul/navsys/route_finder/*.cpp, one algorithm per file, matching the
// layout here.
package finder

import (
	"math"

	"github.com/byuldev/byulnav/config"
	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/navgrid"
	"github.com/byuldev/byulnav/route"
)

// CostFunc returns the traversal cost from 'from' to 'to'.
type CostFunc func(g *navgrid.Grid, from, to coord.Coord) float32

// HeuristicFunc returns a non-negative distance estimate between a and b.
type HeuristicFunc func(a, b coord.Coord) float32

// DefaultCost is the Euclidean step distance between adjacent cells
// (1.0 orthogonal, √2 diagonal), matching diagonal_cost in
// byul/navsys/route_finder/route_finder_core.h, or +Inf into a blocked
// cell.
func DefaultCost(g *navgrid.Grid, from, to coord.Coord) float32 {
	if g.IsBlocked(to.X, to.Y) {
		return float32(math.Inf(1))
	}
	return float32(coord.Euclidean(from, to))
}

// DefaultEuclideanHeuristic is the default heuristic for most finders.
func DefaultEuclideanHeuristic(a, b coord.Coord) float32 {
	return float32(coord.Euclidean(a, b))
}

// DefaultManhattanHeuristic is IDA*'s default heuristic.
func DefaultManhattanHeuristic(a, b coord.Coord) float32 {
	return float32(coord.Manhattan(a, b))
}

// Algorithm tags accepted by Run.
type Algorithm int

const (
	AStar Algorithm = iota
	Dijkstra
	BFS
	DFS
	IDAStar
	WeightedAStar
	RTAStar
	SMAStar
	FringeSearch
	FastMarching
	GreedyBestFirst
)

// Params carries algorithm-specific tuning, used only by the algorithms
// that need one; zero values fall back to the documented defaults
// (spec.md §4.5).
type Params struct {
	// Weight is Weighted A*'s w >= 1. Zero means the configured
	// default (1.5 in the embedded defaults).
	Weight float32
	// Depth is RTA*'s bounded lookahead depth. Zero means the
	// configured default (8 in the embedded defaults).
	Depth int
	// Delta is Fringe Search's threshold band width. Zero means the
	// configured default (1.0 in the embedded defaults).
	Delta float32
	// MemoryBudget is SMA*'s max frontier size. Zero means the
	// configured default (10000 in the embedded defaults).
	MemoryBudget int
}

func (p Params) weightOrDefault() float32 {
	if p.Weight <= 0 {
		return config.Current().Finder.Weight
	}
	return p.Weight
}

func (p Params) depthOrDefault() int {
	if p.Depth <= 0 {
		return config.Current().Finder.Depth
	}
	return p.Depth
}

func (p Params) deltaOrDefault() float32 {
	if p.Delta <= 0 {
		return config.Current().Finder.Delta
	}
	return p.Delta
}

func (p Params) memoryBudgetOrDefault() int {
	if p.MemoryBudget <= 0 {
		return config.Current().Finder.MemoryBudget
	}
	return p.MemoryBudget
}

// Finder is the static-planner configuration struct of spec.md §4.5.
type Finder struct {
	Grid  *navgrid.Grid
	Start coord.Coord
	Goal  coord.Coord

	Algorithm Algorithm
	Params    Params

	CostFn      CostFunc
	HeuristicFn HeuristicFunc

	MaxRetry int
	Debug    bool
}

// New returns a Finder defaulted per spec.md §4.4: cost=DefaultCost,
// HeuristicFn left nil so each finder applies its own default
// (DefaultEuclideanHeuristic, or DefaultManhattanHeuristic for IDA*),
// MaxRetry from config (1000 by embedded default, MAX_RETRY in
// byul/navsys/route_finder/route_finder.h), Algorithm=AStar.
func New(grid *navgrid.Grid, start, goal coord.Coord) *Finder {
	return &Finder{
		Grid:        grid,
		Start:       start,
		Goal:        goal,
		Algorithm:   AStar,
		CostFn:      DefaultCost,
		HeuristicFn: nil,
		MaxRetry:    config.Current().Finder.MaxRetry,
	}
}

func (f *Finder) costFn() CostFunc {
	if f.CostFn != nil {
		return f.CostFn
	}
	return DefaultCost
}

func (f *Finder) heuristicFn() HeuristicFunc {
	if f.HeuristicFn != nil {
		return f.HeuristicFn
	}
	return DefaultEuclideanHeuristic
}

func (f *Finder) maxRetry() int {
	if f.MaxRetry <= 0 {
		return config.Current().Finder.MaxRetry
	}
	return f.MaxRetry
}

// Run selects the static finder named by f.Algorithm and executes it.
func Run(f *Finder) *route.Route {
	switch f.Algorithm {
	case Dijkstra:
		return runDijkstra(f)
	case BFS:
		return runBFS(f)
	case DFS:
		return runDFS(f)
	case IDAStar:
		return runIDAStar(f)
	case WeightedAStar:
		return runWeightedAStar(f)
	case RTAStar:
		return runRTAStar(f)
	case SMAStar:
		return runSMAStar(f)
	case FringeSearch:
		return runFringeSearch(f)
	case FastMarching:
		return runFastMarching(f)
	case GreedyBestFirst:
		return runGreedyBestFirst(f)
	default:
		return runAStar(f)
	}
}

// reconstructFromParents walks the parent chain from goal back to start
// and reverses it into a forward-ordered route, shared by every
// finder built on a predecessor map (A*, Dijkstra, BFS, DFS,
// greedy-best-first, weighted A*, IDA*, SMA*, fringe search).
func reconstructFromParents(parents coord.Map[coord.Coord], start, goal coord.Coord, cost float32, success bool) *route.Route {
	r := route.New()
	if !success {
		r.Append(start)
		r.Success = false
		return r
	}
	var rev coord.List
	cur := goal
	for {
		rev = append(rev, cur)
		if cur == start {
			break
		}
		p, ok := parents[cur]
		if !ok {
			r.Append(start)
			r.Success = false
			return r
		}
		cur = p
	}
	for i := len(rev) - 1; i >= 0; i-- {
		r.Append(rev[i])
	}
	r.Cost = cost
	r.Success = true
	return r
}
