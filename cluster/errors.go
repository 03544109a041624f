package cluster

import "errors"

// Sentinel errors for clustering engine construction and execution.
var (
	// ErrTargetTooSmall indicates the requested number of clusters is
	// smaller than the number of connected components of the underlying
	// graph: no valid clustering can cover every vertex.
	ErrTargetTooSmall = errors.New("cluster: target below number of connected components")

	// ErrBelowFloor indicates the probing loop drove p_curr below p_low
	// without reaching a valid clustering (concurrent engine).
	ErrBelowFloor = errors.New("cluster: threshold fell below floor before converging")

	// ErrNoUncoveredVertex signals an internal invariant violation: a
	// caller asked for an uncovered vertex when none exists.
	ErrNoUncoveredVertex = errors.New("cluster: no uncovered vertex available")

	// ErrInvertedBounds signals an internal invariant violation: a
	// guesser's bisection bounds crossed.
	ErrInvertedBounds = errors.New("cluster: guesser bounds inverted")
)
