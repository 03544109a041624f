package cluster

import (
	"fmt"

	"github.com/go-ugraph/relclust/cache"
	"github.com/go-ugraph/relclust/rng"
)

// pickUncoveredCandidate implements spec §4.6 step 1, shared by both greedy
// cover engines: prefer uncovered-and-cached vertices (to amortise cache
// reuse), falling back to any uncovered vertex. Deterministic (lowest id)
// when rnd is nil, uniform-random over the candidate pool otherwise.
func pickUncoveredCandidate(c *Clustering, ch *cache.Cache, rnd *rng.Stream) int {
	var cached, any []int
	for v, s := range c.Info {
		if _, ok := s.(Uncovered); ok {
			any = append(any, v)
			if ch.Contains(v) {
				cached = append(cached, v)
			}
		}
	}
	pool := cached
	if len(pool) == 0 {
		pool = any
	}
	if rnd != nil {
		return pool[rnd.NextIntn(len(pool))]
	}
	return pool[0]
}

// uncoveredIDs returns the vertex ids currently Uncovered, in ascending
// order.
func uncoveredIDs(c *Clustering) []int {
	var out []int
	for v, s := range c.Info {
		if _, ok := s.(Uncovered); ok {
			out = append(out, v)
		}
	}
	return out
}

// applyCoverStep implements spec §4.6 step 4: given freshly estimated
// probabilities P from newly-marked center c, update every vertex's state
// and zero the cache access counter of any vertex that becomes (or
// remains) covered-but-not-center, so Cleanup preferentially evicts it.
func applyCoverStep(c *Clustering, ch *cache.Cache, center int, pCurr float64, p []float64) {
	for v := 0; v < len(p); v++ {
		pv := p[v]
		switch {
		case pv >= pCurr && c.IsUncovered(v):
			c.Cover(v, center, pv)
			if ch.Contains(v) {
				ch.SetAccessed(v, 0)
			}
		case pv >= pCurr && !c.IsCenter(v) && pv > c.Probability(v):
			c.Cover(v, center, pv)
			if ch.Contains(v) {
				ch.SetAccessed(v, 0)
			}
		case c.IsUncovered(v) && pv > c.UnreliableProbability(v):
			c.UnreliableCover(v, center, pv)
		}
	}
}

// promoteRemaining turns every still-uncovered vertex into its own center,
// returning the count promoted (spec §4.6 step 5 / §4.7 completion step).
func promoteRemaining(c *Clustering) int {
	n := 0
	for v, s := range c.Info {
		if _, ok := s.(Uncovered); ok {
			c.MakeCenter(v)
			n++
		}
	}
	return n
}

// fixupDegenerate implements the resolved Open Question on the post-loop
// fixup (spec §4.6, DESIGN.md decision #2): scan forward for the first
// center and attach every zero-probability vertex to it; if no center
// exists at all, the run had already failed before reaching fixup.
func fixupDegenerate(c *Clustering, warnings *[]Warning) {
	firstCenter := -1
	for v := range c.Info {
		if c.IsCenter(v) {
			firstCenter = v
			break
		}
	}
	if firstCenter < 0 {
		return
	}
	for v := range c.Info {
		if c.IsCenter(v) {
			continue
		}
		if c.Probability(v) == 0 {
			c.Cover(v, firstCenter, 0.0)
			*warnings = append(*warnings, Warning{
				Message: fmt.Sprintf("vertex %d has no reliable center; degenerate fallback to center %d", v, firstCenter),
			})
		}
	}
}

// totalScore sums every vertex's current probability (spec §4.7 point 1:
// the avg-prob score fed into the score-monotone guesser).
func totalScore(c *Clustering) float64 {
	sum := 0.0
	for v := range c.Info {
		sum += c.Probability(v)
	}
	return sum
}
