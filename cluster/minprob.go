package cluster

import (
	"github.com/go-ugraph/relclust/cache"
	"github.com/go-ugraph/relclust/graph"
	"github.com/go-ugraph/relclust/guesser"
	"github.com/go-ugraph/relclust/rng"
	"github.com/go-ugraph/relclust/sampler"
)

// MinProbResult is the outcome of a min-prob engine run.
type MinProbResult struct {
	Clustering *Clustering
	TerminalP  float64
	UsedSlack  int
	Iterations int
	Warnings   []Warning
}

// MinProbOption configures a MinProbEngine.
type MinProbOption func(*MinProbEngine)

// WithRandomizedTieBreak enables uniform-random tie-breaking among
// equally-eligible center candidates, driven by a stream seeded from seed.
// Without this option the picker is deterministic (lowest vertex id first).
func WithRandomizedTieBreak(seed uint64) MinProbOption {
	return func(e *MinProbEngine) {
		e.rng = rng.New(seed)
	}
}

// MinProbEngine drives the k-center-style greedy cover (spec §4.5/§4.6):
// an outer probing loop over a guesser.Guesser, rebuilding a candidate
// clustering at each guess and keeping the best valid one.
type MinProbEngine struct {
	g       *graph.Graph
	sampler sampler.Sampler
	cache   *cache.Cache
	target  int
	slack   int
	rng     *rng.Stream
}

// NewMinProbEngine constructs the engine. target is k (must be >= the
// number of connected components of g, checked by the caller); slack is s
// from spec §4.6.
func NewMinProbEngine(g *graph.Graph, s sampler.Sampler, c *cache.Cache, target, slack int, opts ...MinProbOption) *MinProbEngine {
	e := &MinProbEngine{g: g, sampler: s, cache: c, target: target, slack: slack}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the shared probing loop (spec §4.5) until gs stops,
// returning the best valid clustering found, or the last iteration's
// clustering plus a degenerate-fallback warning if none was ever fully valid.
func (e *MinProbEngine) Run(gs guesser.Guesser) (*MinProbResult, error) {
	n := e.g.NumVertices()
	out := make([]float64, n)

	var incumbent *Clustering
	bestP := -1.0
	bestSlack := 0
	var working *Clustering
	iterations := 0

	for {
		e.cache.Cleanup()
		working = NewClustering(n)
		pCurr := gs.PCurr()
		e.sampler.MinProbability(pCurr)

		usedSlack := e.innerCover(working, pCurr, out)
		iterations++

		if working.CountUncovered() == 0 {
			gs.Below()
			if pCurr > bestP {
				bestP = pCurr
				bestSlack = usedSlack
				incumbent = working.Clone()
			}
		} else {
			gs.Above()
		}

		if gs.Stop() {
			break
		}
	}

	result := &MinProbResult{TerminalP: bestP, Iterations: iterations, UsedSlack: bestSlack}
	if incumbent == nil {
		incumbent = working
	}
	result.Clustering = incumbent
	fixupDegenerate(incumbent, &result.Warnings)
	return result, nil
}

// innerCover runs the min-prob greedy cover (spec §4.6) for one threshold
// guess, returning the number of vertices promoted via slack fast-exit.
func (e *MinProbEngine) innerCover(working *Clustering, pCurr float64, out []float64) int {
	usedSlack := 0
	centersSelected := 0

	for step := 0; step < e.target; step++ {
		if working.CountUncovered() == 0 {
			break
		}

		c := pickUncoveredCandidate(working, e.cache, e.rng)
		working.MakeCenter(c)
		centersSelected++
		if e.cache.Contains(c) {
			e.cache.SetAccessed(c, 0)
		}

		e.sampler.ConnectionProbabilitiesCache(c, e.cache, out)
		applyCoverStep(working, e.cache, c, pCurr, out)

		if centersSelected+working.CountUncovered() <= e.target+e.slack {
			usedSlack += promoteRemaining(working)
			break
		}
	}
	return usedSlack
}
