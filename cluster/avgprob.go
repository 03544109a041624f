package cluster

import (
	"github.com/go-ugraph/relclust/cache"
	"github.com/go-ugraph/relclust/graph"
	"github.com/go-ugraph/relclust/rng"
	"github.com/go-ugraph/relclust/sampler"
)

// ScoreGuesser is the score-monotone guesser contract the avg-prob engine
// drives (spec §4.4, §4.7 point 1): update(score) replaces above()/below().
// Both guesser.ScoreGuesser and guesser.Directional satisfy this.
type ScoreGuesser interface {
	PCurr() float64
	Update(score float64)
	Stop() bool
}

// AvgProbResult is the outcome of an avg-prob engine run.
type AvgProbResult struct {
	Clustering *Clustering
	TerminalP  float64
	BestScore  float64
	Iterations int
	Warnings   []Warning
}

// AvgProbEngine drives the k-median-style greedy cover (spec §4.7).
type AvgProbEngine struct {
	g       *graph.Graph
	sampler sampler.Sampler
	cache   *cache.Cache
	target  int
	batch   int // h; <= 1 disables batched center selection
	rng     *rng.Stream
}

// NewAvgProbEngine constructs the engine. target is k; batch is h from
// spec §4.7 point 3 (pass 0 or 1 to disable batched selection). seed drives
// both the deterministic tie-break and the batched-candidate draws.
func NewAvgProbEngine(g *graph.Graph, s sampler.Sampler, c *cache.Cache, target, batch int, seed uint64) *AvgProbEngine {
	return &AvgProbEngine{g: g, sampler: s, cache: c, target: target, batch: batch, rng: rng.New(seed)}
}

// Run executes the shared probing loop (spec §4.5) adapted for the
// continuous avg-prob score, keeping the best-scoring valid clustering.
func (e *AvgProbEngine) Run(gs ScoreGuesser) (*AvgProbResult, error) {
	n := e.g.NumVertices()
	out := make([]float64, n)

	var incumbent *Clustering
	bestScore := -1.0
	var working *Clustering
	iterations := 0

	for {
		e.cache.Cleanup()
		working = NewClustering(n)
		pCurr := gs.PCurr()
		e.sampler.MinProbability(pCurr)

		e.innerCover(working, pCurr, out)
		iterations++

		valid := working.CountUncovered() == 0
		score := totalScore(working)
		gs.Update(score)
		if valid && score > bestScore {
			bestScore = score
			incumbent = working.Clone()
		}

		if gs.Stop() {
			break
		}
	}

	result := &AvgProbResult{TerminalP: gs.PCurr(), BestScore: bestScore, Iterations: iterations}
	if incumbent == nil {
		incumbent = working
	}
	e.postLoopAugment(incumbent, out)
	result.Clustering = incumbent
	fixupDegenerate(incumbent, &result.Warnings)
	return result, nil
}

// innerCover runs the avg-prob greedy cover (spec §4.7) for one threshold
// guess: a completion step replaces min-prob's slack fast-exit, and center
// selection may be batched (point 3).
func (e *AvgProbEngine) innerCover(working *Clustering, pCurr float64, out []float64) {
	centersSelected := 0

	for working.CountUncovered() > 0 {
		if centersSelected+working.CountUncovered() <= e.target {
			promoteRemaining(working)
			return
		}
		if centersSelected >= e.target {
			return
		}

		var c int
		if e.batch > 1 {
			c = e.pickBatchedCenter(working, pCurr, out)
		} else {
			c = pickUncoveredCandidate(working, e.cache, e.rng)
		}
		working.MakeCenter(c)
		centersSelected++
		if e.cache.Contains(c) {
			e.cache.SetAccessed(c, 0)
		}

		e.sampler.ConnectionProbabilitiesCache(c, e.cache, out)
		applyCoverStep(working, e.cache, c, pCurr, out)
	}
}

// pickBatchedCenter implements spec §4.7 point 3: draw h distinct
// candidates uniformly from the uncovered set via partial Fisher-Yates,
// evaluate each by the count of vertices it would newly cover at pCurr,
// and commit the best (first-found wins on ties).
func (e *AvgProbEngine) pickBatchedCenter(working *Clustering, pCurr float64, scratch []float64) int {
	candidates := uncoveredIDs(working)
	h := e.batch
	if h <= 0 || h > len(candidates) {
		h = len(candidates)
	}
	for i := 0; i < h; i++ {
		j := i + e.rng.NextIntn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	candidates = candidates[:h]

	best := candidates[0]
	bestCount := -1
	for _, cand := range candidates {
		e.sampler.ConnectionProbabilities(cand, scratch)
		count := 0
		for v, s := range working.Info {
			if _, ok := s.(Uncovered); ok && scratch[v] >= pCurr {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = cand
		}
	}
	return best
}

// postLoopAugment implements spec §4.7 point 5: re-sample from the
// incumbent's current centers to assign any remaining uncovered vertex to
// its best available center.
func (e *AvgProbEngine) postLoopAugment(c *Clustering, scratch []float64) {
	var centers []int
	for v, s := range c.Info {
		if _, ok := s.(Center); ok {
			centers = append(centers, v)
		}
	}
	if len(centers) == 0 {
		return
	}

	uncovered := uncoveredIDs(c)
	if len(uncovered) >= e.target {
		for _, center := range centers {
			e.sampler.ConnectionProbabilitiesCache(center, e.cache, scratch)
			for _, v := range uncoveredIDs(c) {
				if scratch[v] > c.UnreliableProbability(v) {
					c.UnreliableCover(v, center, scratch[v])
				}
			}
		}
	} else {
		for _, center := range centers {
			e.sampler.ConnectionProbabilitiesCache(center, e.cache, scratch)
			for _, v := range uncovered {
				if scratch[v] > c.UnreliableProbability(v) {
					c.UnreliableCover(v, center, scratch[v])
				}
			}
		}
	}
	for _, v := range uncoveredIDs(c) {
		if p := c.UnreliableProbability(v); p > 0 {
			center := 0
			if u, ok := c.Info[v].(Uncovered); ok && u.BestCenter != nil {
				center = *u.BestCenter
			}
			c.Cover(v, center, p)
		}
	}
}
