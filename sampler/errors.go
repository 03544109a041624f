package sampler

import "errors"

// Sentinel errors for sampler construction and queries.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to a constructor.
	ErrNilGraph = errors.New("sampler: graph is nil")

	// ErrInvalidParameter indicates epsilon, delta or alpha fell outside
	// the open interval (0, 1).
	ErrInvalidParameter = errors.New("sampler: epsilon/delta/alpha must be in (0,1)")

	// ErrVertexOutOfRange indicates a query vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("sampler: vertex out of range")

	// ErrEmptyVertexSet indicates ConnectionProbability was called with no
	// vertices.
	ErrEmptyVertexSet = errors.New("sampler: empty vertex set")
)
