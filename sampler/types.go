package sampler

import "github.com/go-ugraph/relclust/cache"

// Sampler is the contract shared by every world-sampling strategy: grow the
// pool so that estimates at a given threshold are reliable, then answer
// connection-probability queries over the current prefix.
//
// Implementations: CC (full connected components, unionfind.go/cc_sampler.go)
// and BFS (bounded-depth reachability, bfs_sampler.go). A clustering engine
// is written against this interface and accepts either.
type Sampler interface {
	// MinProbability ensures the pool has enough samples to make estimates
	// at threshold p reliable under the Monte-Carlo bound, and sets the
	// number of samples ("used") that participate in subsequent queries.
	MinProbability(p float64)

	// ConnectionProbabilities writes P(v->u) for all u into out (len n),
	// computed fresh over the entire used prefix, and returns the count of
	// u with P(v->u) >= the sampler's current reliability watermark.
	ConnectionProbabilities(v int, out []float64) int

	// ConnectionProbabilitiesCache is as ConnectionProbabilities, but
	// reuses and incrementally updates v's entry in c.
	ConnectionProbabilitiesCache(v int, c *cache.Cache, out []float64) int

	// ConnectionProbability returns the fraction of used worlds in which
	// every listed vertex shares a component with vertices[0].
	ConnectionProbability(vertices []int) float64

	// MinReliable returns the watermark min(all p passed to MinProbability).
	MinReliable() float64

	// NumVertices returns n.
	NumVertices() int

	// Used returns the number of samples currently participating in
	// queries (<= Total).
	Used() int

	// Total returns the number of samples generated so far.
	Total() int
}
