package sampler

import (
	"sync"

	"github.com/go-ugraph/relclust/cache"
	"github.com/go-ugraph/relclust/graph"
	"github.com/go-ugraph/relclust/rng"
)

// workerState is the per-worker scratch owned exclusively by one worker
// goroutine: a persistent RNG stream (continued across MinProbability
// calls so that world i's content never depends on how the pool was
// grown to reach it) and a reusable union-find buffer.
type workerState struct {
	stream *rng.Stream
	uf     *unionFind
}

// CCSampler is the full-connected-components possible-world sampler: each
// world is reduced to a component-id-per-vertex map via union-find over
// independently retained edges.
type CCSampler struct {
	g       *graph.Graph
	n       int
	epsilon float64
	delta   float64
	alpha   float64

	numWorkers int
	workers    []*workerState

	mu          sync.Mutex // guards worlds/total during growth only
	worlds      [][]int32  // worlds[i] has length n
	total       int
	used        int
	minReliable float64
}

// NewCCSampler constructs a CCSampler over g, seeded for reproducibility.
// epsilon, delta and alpha (the "theory samples fraction") must lie in
// (0, 1).
func NewCCSampler(g *graph.Graph, seed uint64, epsilon, delta, alpha float64) (*CCSampler, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !validParams(epsilon, delta, alpha) {
		return nil, ErrInvalidParameter
	}
	n := g.NumVertices()
	numWorkers := defaultWorkers()
	if numWorkers > n {
		numWorkers = n
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	root := rng.New(seed)
	workers := make([]*workerState, numWorkers)
	for w := 0; w < numWorkers; w++ {
		workers[w] = &workerState{
			stream: rng.WorkerStream(root, w),
			uf:     newUnionFind(n),
		}
	}
	return &CCSampler{
		g:           g,
		n:           n,
		epsilon:     epsilon,
		delta:       delta,
		alpha:       alpha,
		numWorkers:  numWorkers,
		workers:     workers,
		minReliable: 1.0,
	}, nil
}

// Worlds returns the component-id slices for the used prefix of the pool,
// one []int32 of length n per world. Used by the scores package to compute
// AVPR, which needs each world's full partition rather than an aggregated
// probability. The returned slice and its elements must not be mutated.
func (s *CCSampler) Worlds() [][]int32 {
	return s.worlds[:s.used]
}

func (s *CCSampler) NumVertices() int    { return s.n }
func (s *CCSampler) Used() int           { return s.used }
func (s *CCSampler) Total() int          { return s.total }
func (s *CCSampler) MinReliable() float64 { return s.minReliable }

// MinProbability ensures total >= N(p), sets used := N(p), and lowers the
// reliability watermark. used may be less than total (transiently, during
// bisection) or may require growing total (monotonically, since the pool
// is append-only).
func (s *CCSampler) MinProbability(p float64) {
	need := requiredSamples(p, s.epsilon, s.delta, s.alpha)
	if need < 1 {
		need = 1
	}
	s.growTo(need)
	s.used = need
	if p < s.minReliable {
		s.minReliable = p
	}
}

// growTo appends worlds [total, target) if target > total. New indices are
// assigned to worker w = i % numWorkers, so that a given world's owning
// worker — and hence its position in that worker's persistent RNG stream —
// never depends on the batching of growTo calls that produced it.
func (s *CCSampler) growTo(target int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if target <= s.total {
		return
	}
	for len(s.worlds) < target {
		s.worlds = append(s.worlds, nil)
	}
	lo, hi := s.total, target
	edges := s.g.Edges()

	var wg sync.WaitGroup
	for w := 0; w < s.numWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ws := s.workers[w]
			for i := lo; i < hi; i++ {
				if i%s.numWorkers != w {
					continue
				}
				ws.uf.reset()
				for _, e := range edges {
					if ws.stream.NextDouble() < e.Prob {
						ws.uf.union(int32(e.From), int32(e.To))
					}
				}
				comp := make([]int32, s.n)
				ws.uf.components(comp)
				s.worlds[i] = comp
			}
		}(w)
	}
	wg.Wait()
	s.total = target
}

// ConnectionProbabilities implements Sampler.
func (s *CCSampler) ConnectionProbabilities(v int, out []float64) int {
	counts := s.accumulate(v, 0, s.used)
	return s.finalize(counts, s.used, out)
}

// ConnectionProbabilitiesCache implements Sampler.
func (s *CCSampler) ConnectionProbabilitiesCache(v int, c *cache.Cache, out []float64) int {
	el := c.GetOrNew(v, s.n)
	if s.used > el.SamplesSeen {
		delta := s.accumulate(v, el.SamplesSeen, s.used)
		for u := 0; u < s.n; u++ {
			el.Counts[u] += delta[u]
		}
		el.SamplesSeen = s.used
	}
	return s.finalizeInt32(el.Counts, el.SamplesSeen, out)
}

// ConnectionProbability implements Sampler.
func (s *CCSampler) ConnectionProbability(vertices []int) float64 {
	if len(vertices) == 0 {
		return 0
	}
	if s.used == 0 {
		return 0
	}
	root := vertices[0]
	count := 0
	for w := 0; w < s.used; w++ {
		world := s.worlds[w]
		rootComp := world[root]
		ok := true
		for _, u := range vertices[1:] {
			if world[u] != rootComp {
				ok = false
				break
			}
		}
		if ok {
			count++
		}
	}
	return float64(count) / float64(s.used)
}

// accumulate counts, over samples [lo, hi) of the used prefix, how many
// times each vertex shares v's component. Fans out across a contiguous
// partition of [lo, hi), each goroutine writing only into its own buffer;
// the reduction sums buffers in worker-index order, which is deterministic
// since it happens strictly after the join.
func (s *CCSampler) accumulate(v, lo, hi int) []int32 {
	total := hi - lo
	out := make([]int32, s.n)
	if total <= 0 {
		return out
	}
	workers := defaultWorkers()
	partials := make([][]int32, workers)
	forEachRange(total, workers, func(worker, rlo, rhi int) {
		buf := make([]int32, s.n)
		for w := lo + rlo; w < lo+rhi; w++ {
			world := s.worlds[w]
			root := world[v]
			for u := 0; u < s.n; u++ {
				if world[u] == root {
					buf[u]++
				}
			}
		}
		partials[worker] = buf
	})
	for _, buf := range partials {
		if buf == nil {
			continue
		}
		for u := 0; u < s.n; u++ {
			out[u] += buf[u]
		}
	}
	return out
}

func (s *CCSampler) finalize(counts []int32, samplesSeen int, out []float64) int {
	return s.finalizeInt32(counts, samplesSeen, out)
}

func (s *CCSampler) finalizeInt32(counts []int32, samplesSeen int, out []float64) int {
	reliable := 0
	if samplesSeen == 0 {
		for u := range out {
			out[u] = 0
		}
		return 0
	}
	for u, c := range counts {
		p := float64(c) / float64(samplesSeen)
		out[u] = p
		if p >= s.minReliable {
			reliable++
		}
	}
	return reliable
}
