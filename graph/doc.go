// Package graph defines the uncertain graph model: an undirected, simple
// graph over a contiguous integer vertex space [0, n), whose edges each
// carry an independent existence probability in (0, 1] and a stable
// 0-based index.
//
// Graph is intentionally minimal — it is a read-mostly data model handed to
// the sampler, not a general-purpose graph algorithms library. Vertex
// identity is the array index; the string Label on each vertex exists only
// for output.
package graph
