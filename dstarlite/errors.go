package dstarlite

import "errors"

var (
	// ErrNilGrid indicates NewFull was called with a nil grid.
	ErrNilGrid = errors.New("dstarlite: grid must not be nil")
	// ErrNilCostFunc indicates NewFull was called with a nil CostFunc.
	ErrNilCostFunc = errors.New("dstarlite: costFn must not be nil")
	// ErrNilHeuristicFunc indicates NewFull was called with a nil HeuristicFunc.
	ErrNilHeuristicFunc = errors.New("dstarlite: heuristicFn must not be nil")
	// ErrNonPositiveCap indicates a retry cap was set to zero or below
	// through SetRetryCaps.
	ErrNonPositiveCap = errors.New("dstarlite: retry caps must be positive")
)
