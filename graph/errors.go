package graph

import "errors"

// Sentinel errors for graph construction and loading.
var (
	// ErrMalformedLine indicates an edge-list line that is neither blank,
	// a comment, nor a well-formed "SRC\tDST[\tPROB]" record.
	ErrMalformedLine = errors.New("graph: malformed edge-list line")

	// ErrInvalidProbability indicates a parsed probability outside (0, 1].
	ErrInvalidProbability = errors.New("graph: edge probability out of range")

	// ErrEmptyGraph indicates a graph with zero vertices was loaded.
	ErrEmptyGraph = errors.New("graph: no vertices")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
)
