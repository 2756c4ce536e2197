// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dstarlite implements the D* Lite incremental shortest-path
// planner described in Sven Koenig and Maxim Likhachev's paper:
//
//	Fast Replanning for Navigation in Unknown Terrain
//	http://pub1.willowgarage.com/~konolige/cs225b/dlite_tro05.pdf
//
// D* Lite is an incremental algorithm: once a path has been found,
// updates to it after a small number of obstacle changes are very fast
// compared to replanning from scratch with a one-shot finder.
//
// This package generalizes azul3d's original float64-keyed Planner (which
// worked over an abstract State/Data graph) to the concrete NavGrid
// domain: a Planner now plans over coord.Coord cells of a navgrid.Grid,
// under an injectable cost/heuristic/blocked/move/changed-cells contract,
// and additionally drives agent motion through FindLoop.
package dstarlite

import (
	"context"
	"log/slog"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/byuldev/byulnav/config"
	"github.com/byuldev/byulnav/coord"
	"github.com/byuldev/byulnav/navgrid"
	"github.com/byuldev/byulnav/pqueue"
	"github.com/byuldev/byulnav/route"
)

// CostFunc returns the traversal cost from 'from' to 'to'. It must return
// +Inf when 'to' is blocked, and must be non-negative otherwise.
type CostFunc func(g *navgrid.Grid, from, to coord.Coord) float32

// HeuristicFunc returns a non-negative estimate of the distance between a
// and b. Consistent heuristics (w.r.t. CostFunc) yield optimal plans;
// inconsistent ones still terminate but may over-expand.
type HeuristicFunc func(a, b coord.Coord) float32

// MoveFunc is called once per committed step during FindLoop.
type MoveFunc func(c coord.Coord)

// ChangedFunc reports the cells whose obstacle state changed since the
// previous FindLoop step. A nil or empty result means "no change".
type ChangedFunc func() coord.List

// DefaultCost is the default CostFunc: the Euclidean step distance
// between adjacent cells (1.0 orthogonal, √2 diagonal), matching
// diagonal_cost in byul/navsys/route_finder/route_finder_core.h, or
// +Inf into a blocked cell.
func DefaultCost(g *navgrid.Grid, from, to coord.Coord) float32 {
	if g.IsBlocked(to.X, to.Y) {
		return float32(math.Inf(1))
	}
	return float32(coord.Euclidean(from, to))
}

// DefaultHeuristic is the default HeuristicFunc: Euclidean distance.
func DefaultHeuristic(a, b coord.Coord) float32 {
	return float32(coord.Euclidean(a, b))
}

// Planner is a D* Lite instance: it owns its g/rhs tables, frontier, and
// proto/real routes exclusively; the grid, start, goal and callbacks are
// supplied and survive Reset (spec.md §3 Lifecycle).
type Planner struct {
	InstanceID uuid.UUID
	Logger     *slog.Logger

	grid        *navgrid.Grid
	start, goal coord.Coord

	km  float32
	g   coord.Map[float32]
	rhs coord.Map[float32]
	u   *pqueue.Queue

	costFn      CostFunc
	heuristicFn HeuristicFunc
	moveFn      MoveFunc
	changedFn   ChangedFunc

	// IntervalMsec is the sleep between FindLoop steps. 0 means a
	// cooperative yield instead of a timed sleep.
	IntervalMsec int

	ComputeMaxRetry     int
	ReconstructMaxRetry int
	RealLoopMaxRetry    int

	ProtoComputeRetryCount int
	RealComputeRetryCount  int
	RealLoopRetryCount     int
	ReconstructRetryCount  int

	DebugModeEnabled bool
	updateCount      coord.Map[int32]

	ProtoRoute *route.Route
	RealRoute  *route.Route

	forceQuit bool
}

// New returns a Planner over grid with the given start/goal and default
// cost/heuristic functions and caps (derived from |Δx|·|Δy| per
// spec.md §4.3.8, unless the config sets a positive cap).
func New(grid *navgrid.Grid, start, goal coord.Coord) *Planner {
	return NewFull(grid, start, goal, DefaultCost, DefaultHeuristic)
}

// NewFull returns a Planner with explicit cost/heuristic functions. It
// panics on a nil grid, cost function, or heuristic function: these are
// programmer errors, not planning outcomes, so they are not reported
// through Route.Success (spec.md §7).
func NewFull(grid *navgrid.Grid, start, goal coord.Coord, costFn CostFunc, heuristicFn HeuristicFunc) *Planner {
	if grid == nil {
		panic(ErrNilGrid)
	}
	if costFn == nil {
		panic(ErrNilCostFunc)
	}
	if heuristicFn == nil {
		panic(ErrNilHeuristicFunc)
	}
	p := &Planner{
		InstanceID:  uuid.New(),
		Logger:      slog.Default(),
		grid:        grid,
		start:       start,
		goal:        goal,
		costFn:      costFn,
		heuristicFn: heuristicFn,
		updateCount: make(coord.Map[int32]),
	}
	p.applyDefaultCaps()
	p.Reset()
	return p
}

func (p *Planner) applyDefaultCaps() {
	dx := int(p.start.X - p.goal.X)
	if dx < 0 {
		dx = -dx
	}
	dy := int(p.start.Y - p.goal.Y)
	if dy < 0 {
		dy = -dy
	}
	n := dx * dy

	retryCfg := config.Current().Retry
	minCap := retryCfg.MinDefaultRetryCap
	if minCap <= 0 {
		minCap = 100
	}
	if n < minCap {
		n = minCap
	}
	p.ComputeMaxRetry = n
	p.ReconstructMaxRetry = n
	p.RealLoopMaxRetry = n
	if retryCfg.ComputeMaxRetry > 0 {
		p.ComputeMaxRetry = retryCfg.ComputeMaxRetry
	}
	if retryCfg.ReconstructMaxRetry > 0 {
		p.ReconstructMaxRetry = retryCfg.ReconstructMaxRetry
	}
	if retryCfg.RealLoopMaxRetry > 0 {
		p.RealLoopMaxRetry = retryCfg.RealLoopMaxRetry
	}

	p.IntervalMsec = config.Current().Loop.IntervalMsec
}

// SetRetryCaps overrides the compute/reconstruct/real-loop retry caps
// applied by applyDefaultCaps. All three must be positive.
func (p *Planner) SetRetryCaps(computeMax, reconstructMax, realLoopMax int) error {
	if computeMax <= 0 || reconstructMax <= 0 || realLoopMax <= 0 {
		return ErrNonPositiveCap
	}
	p.ComputeMaxRetry = computeMax
	p.ReconstructMaxRetry = reconstructMax
	p.RealLoopMaxRetry = realLoopMax
	return nil
}

// Grid returns the grid this planner operates over.
func (p *Planner) Grid() *navgrid.Grid { return p.grid }

// Start returns the current start coord.
func (p *Planner) Start() coord.Coord { return p.start }

// Goal returns the current goal coord.
func (p *Planner) Goal() coord.Coord { return p.goal }

// SetMoveFunc installs the side-effecting hook called once per committed
// FindLoop step.
func (p *Planner) SetMoveFunc(fn MoveFunc) { p.moveFn = fn }

// SetChangedFunc installs the per-step obstacle-change callback used by
// FindLoop.
func (p *Planner) SetChangedFunc(fn ChangedFunc) { p.changedFn = fn }

// ForceQuit requests that a running FindLoop exit at the next step
// boundary. It is level-triggered: call ForceQuit(false) to re-arm.
func (p *Planner) ForceQuit(v bool) { p.forceQuit = v }

// IsQuitForced reports whether a cancellation has been requested.
func (p *Planner) IsQuitForced() bool { return p.forceQuit }

// UpdateCount returns how many times UpdateVertex has touched c while
// DebugModeEnabled was set, for debug/diagnostic use.
func (p *Planner) UpdateCount(c coord.Coord) int32 {
	return p.updateCount.GetOrDefault(c, 0)
}

// Reset rebuilds g/rhs/frontier and drops both routes. start, goal,
// callbacks and caps survive (spec.md §3 Lifecycle).
func (p *Planner) Reset() {
	p.km = 0
	p.g = make(coord.Map[float32])
	p.rhs = make(coord.Map[float32])
	p.u = pqueue.New()
	p.updateCount = make(coord.Map[int32])
	p.ProtoRoute = nil
	p.RealRoute = nil
	p.forceQuit = false
	p.init()
}

// SetStart updates the start coord and biases km by the heuristic
// distance moved. Use this instead of rebuilding the planner when the
// agent moves between plans.
func (p *Planner) SetStart(c coord.Coord) {
	old := p.start
	p.start = c
	p.km += p.heuristicFn(old, c)
}

func (p *Planner) gOf(c coord.Coord) float32 {
	return p.g.GetOrDefault(c, float32(math.Inf(1)))
}

func (p *Planner) rhsOf(c coord.Coord) float32 {
	return p.rhs.GetOrDefault(c, float32(math.Inf(1)))
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// key implements spec.md §4.3.1:
//
//	key(s) = ( min(g(s),rhs(s)) + h(start,s) + km , min(g(s),rhs(s)) )
func (p *Planner) key(s coord.Coord) pqueue.Key {
	m := float64(min32(p.gOf(s), p.rhsOf(s)))
	k1 := m + float64(p.heuristicFn(p.start, s)) + float64(p.km)
	return pqueue.Key{K1: k1, K2: m}
}

// init implements the Initialize procedure of spec.md §4.3.2.
func (p *Planner) init() {
	p.rhs[p.goal] = 0
	p.u.Push(p.goal, p.key(p.goal))
}

// UpdateVertex implements spec.md §4.3.3. It is the only operation that
// mutates g/rhs outside the main ComputeShortestPath loop.
func (p *Planner) UpdateVertex(u coord.Coord) {
	if p.DebugModeEnabled {
		p.updateCount[u] = p.updateCount.GetOrDefault(u, 0) + 1
	}
	if u != p.goal {
		best := float32(math.Inf(1))
		for _, s := range p.grid.NeighborsAll(u.X, u.Y) {
			c := p.costFn(p.grid, u, s) + p.gOf(s)
			if c < best {
				best = c
			}
		}
		p.rhs[u] = best
	}
	p.u.Remove(u)
	if p.gOf(u) != p.rhsOf(u) {
		p.u.Push(u, p.key(u))
	}
}

// UpdateVertexRange calls UpdateVertex on every cell within Chebyshev
// distance r of s (spec.md §4.3.7), the hook used when a terrain edit may
// affect cost beyond a single cell.
func (p *Planner) UpdateVertexRange(s coord.Coord, r int32) {
	if r <= 0 {
		p.UpdateVertex(s)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			c := coord.Coord{X: s.X + dx, Y: s.Y + dy}
			if !p.grid.IsInside(c.X, c.Y) {
				continue
			}
			p.UpdateVertex(c)
		}
	}
}

// ComputeShortestPath implements spec.md §4.3.4. The retry counter
// touched depends on whether ProtoRoute is empty at entry, matching the
// proto/real split of proto_compute_retry_count vs real_compute_retry_count
// on the original dstar_lite_t.
func (p *Planner) ComputeShortestPath() {
	usingProto := p.ProtoRoute == nil || p.ProtoRoute.Len() == 0
	retries := 0
	maxRetries := p.ComputeMaxRetry
	if maxRetries <= 0 {
		maxRetries = 1
	}

	for retries < maxRetries {
		topKey, haveTop := p.u.TopKey()
		if !haveTop {
			break
		}
		startKey := p.key(p.start)
		if !topKey.Less(startKey) && p.rhsOf(p.start) == p.gOf(p.start) {
			break
		}

		retries++
		u, _ := p.u.Top()
		kOld := topKey
		kNew := p.key(u)

		switch {
		case kOld.Less(kNew):
			p.u.Push(u, kNew)
		case p.gOf(u) > p.rhsOf(u):
			p.u.Pop()
			p.g[u] = p.rhsOf(u)
			for _, s := range p.grid.NeighborsAll(u.X, u.Y) {
				p.UpdateVertex(s)
			}
		default:
			p.u.Pop()
			p.g[u] = float32(math.Inf(1))
			affected := append(p.grid.NeighborsAll(u.X, u.Y), u)
			for _, s := range affected {
				p.UpdateVertex(s)
			}
		}
	}

	if usingProto {
		p.ProtoComputeRetryCount = retries
	} else {
		p.RealComputeRetryCount = retries
	}

	if p.Logger != nil && retries >= maxRetries {
		p.Logger.Warn("dstarlite: compute_shortest_path hit retry cap",
			"instance", p.InstanceID, "retries", retries)
	}
}

// ReconstructRoute implements the proto-phase reconstruction of
// spec.md §4.3.5: walk from start to goal following the locally best
// g-valued neighbor. Cells with g=+Inf terminate the walk with
// Success=false.
func (p *Planner) ReconstructRoute() *route.Route {
	r := route.New()
	current := p.start
	r.Append(current)

	if math.IsInf(float64(p.rhsOf(p.start)), 1) {
		r.Success = false
		return r
	}

	steps := 0
	maxSteps := p.ReconstructMaxRetry
	if maxSteps <= 0 {
		maxSteps = 1
	}
	for current != p.goal && steps < maxSteps {
		steps++
		if math.IsInf(float64(p.gOf(current)), 1) {
			break
		}
		best := float32(math.Inf(1))
		var next coord.Coord
		found := false
		for _, s := range p.grid.NeighborsAll(current.X, current.Y) {
			c := p.costFn(p.grid, current, s) + p.gOf(s)
			if c < best {
				best = c
				next = s
				found = true
			}
		}
		if !found {
			break
		}
		r.Cost += p.costFn(p.grid, current, next)
		current = next
		r.Append(current)
	}
	p.ReconstructRetryCount = steps
	r.Success = current == p.goal
	return r
}

// Find runs ComputeShortestPath then ReconstructRoute for a single,
// static shortest path and stores the result as ProtoRoute.
func (p *Planner) Find() *route.Route {
	p.ComputeShortestPath()
	r := p.ReconstructRoute()
	p.ProtoRoute = r
	return r
}

// FindProto is Find, named for the agent-follows-proto-then-loop
// workflow of spec.md §2 control flow.
func (p *Planner) FindProto() *route.Route {
	return p.Find()
}

// FindLoop implements spec.md §4.3.6: it simulates agent motion along
// the continuously-replanned plan, interleaving ComputeShortestPath with
// MoveFunc/ChangedFunc callbacks, until the goal is reached, the retry
// cap is hit, or ForceQuit is observed.
//
// FindLoop performs no internal parallelism; its only suspension point is
// the per-step delay (spec.md §5). A caller hosting FindLoop on a
// dedicated goroutine may also cancel it via ctx, in addition to
// ForceQuit.
func (p *Planner) FindLoop(ctx context.Context) *route.Route {
	sLast := p.start
	current := p.start

	r := route.New()
	r.Append(current)
	p.RealRoute = r

	maxRetry := p.RealLoopMaxRetry
	if maxRetry <= 0 {
		maxRetry = 1
	}

	retries := 0
	for current != p.goal && retries < maxRetry && !p.forceQuit {
		select {
		case <-ctx.Done():
			p.RealLoopRetryCount = retries
			r.Success = false
			return r
		default:
		}
		retries++

		if math.IsInf(float64(p.rhsOf(current)), 1) {
			break
		}

		best := float32(math.Inf(1))
		var next coord.Coord
		found := false
		for _, s := range p.grid.NeighborsAll(current.X, current.Y) {
			c := p.costFn(p.grid, current, s) + p.gOf(s)
			if c < best {
				best = c
				next = s
				found = true
			}
		}
		if !found {
			break
		}

		r.Cost += p.costFn(p.grid, current, next)
		r.Append(next)
		if p.moveFn != nil {
			p.moveFn(next)
		}

		if p.IntervalMsec > 0 {
			timer := time.NewTimer(time.Duration(p.IntervalMsec) * time.Millisecond)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
			}
		} else {
			runtime.Gosched()
		}

		if p.changedFn != nil {
			changed := p.changedFn()
			if len(changed) > 0 {
				p.km += p.heuristicFn(sLast, current)
				sLast = current
				for _, c := range changed {
					p.UpdateVertexRange(c, 1)
				}
				p.ComputeShortestPath()
				if p.Logger != nil && p.DebugModeEnabled {
					p.Logger.Debug("dstarlite: replanned after obstacle change",
						"instance", p.InstanceID, "changed", len(changed), "km", p.km)
				}
			}
		}

		current = next
	}

	p.RealLoopRetryCount = retries
	r.Success = current == p.goal
	if !r.Success && p.Logger != nil {
		p.Logger.Warn("dstarlite: find_loop ended without reaching goal",
			"instance", p.InstanceID, "retries", retries, "force_quit", p.forceQuit)
	}
	return r
}
