package sampler

import (
	"sync"

	"github.com/go-ugraph/relclust/cache"
	"github.com/go-ugraph/relclust/graph"
	"github.com/go-ugraph/relclust/rng"
)

// BFSSampler is the bounded-depth variant of Sampler: instead of reducing a
// world to full connected components, each world keeps only its retained-
// edge pattern, and a query runs a depth-limited BFS from the source over
// the retained subgraph. It answers the same contract as CCSampler and is
// substitutable wherever Sampler is expected.
//
// The BFS frontier queue is a growable slice (append / pop-front via index
// cursor), never a fixed-capacity ring: a ring sized |V| can overflow if
// the frontier at some depth exceeds it, and nothing in the uncertain-graph
// model bounds frontier width below |V| for every admissible input.
type BFSSampler struct {
	g       *graph.Graph
	n       int
	depth   int
	epsilon float64
	delta   float64
	alpha   float64

	numWorkers int
	workers    []*bfsWorkerState

	mu          sync.Mutex
	retained    [][]bool // retained[i] has length numEdges
	total       int
	used        int
	minReliable float64
}

type bfsWorkerState struct {
	stream *rng.Stream
}

// NewBFSSampler constructs a BFSSampler limiting reachability search to
// depth hops from the query source.
func NewBFSSampler(g *graph.Graph, seed uint64, depth int, epsilon, delta, alpha float64) (*BFSSampler, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !validParams(epsilon, delta, alpha) {
		return nil, ErrInvalidParameter
	}
	if depth < 1 {
		depth = g.NumVertices()
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
	workers := make([]*bfsWorkerState, numWorkers)
	for w := 0; w < numWorkers; w++ {
		workers[w] = &bfsWorkerState{stream: rng.WorkerStream(root, w)}
	}
	return &BFSSampler{
		g:           g,
		n:           n,
		depth:       depth,
		epsilon:     epsilon,
		delta:       delta,
		alpha:       alpha,
		numWorkers:  numWorkers,
		workers:     workers,
		minReliable: 1.0,
	}, nil
}

func (s *BFSSampler) NumVertices() int     { return s.n }
func (s *BFSSampler) Used() int            { return s.used }
func (s *BFSSampler) Total() int           { return s.total }
func (s *BFSSampler) MinReliable() float64 { return s.minReliable }

func (s *BFSSampler) MinProbability(p float64) {
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

func (s *BFSSampler) growTo(target int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if target <= s.total {
		return
	}
	for len(s.retained) < target {
		s.retained = append(s.retained, nil)
	}
	lo, hi := s.total, target
	edges := s.g.Edges()
	m := len(edges)

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
				flags := make([]bool, m)
				for _, e := range edges {
					flags[e.Index] = ws.stream.NextDouble() < e.Prob
				}
				s.retained[i] = flags
			}
		}(w)
	}
	wg.Wait()
	s.total = target
}

// bfsReach returns, for one world, the set of vertices reachable from v
// within s.depth hops over retained edges.
func (s *BFSSampler) bfsReach(v int, flags []bool, visited []bool, queue []int32) []int32 {
	for i := range visited {
		visited[i] = false
	}
	queue = queue[:0]
	queue = append(queue, int32(v))
	visited[v] = true
	depthOf := make([]int, 0, 1) // parallel to queue via index cursor below
	depthOf = append(depthOf, 0)

	head := 0
	for head < len(queue) {
		u := queue[head]
		d := depthOf[head]
		head++
		if d >= s.depth {
			continue
		}
		for _, he := range s.g.Neighbors(int(u)) {
			if !flags[he.Index] || visited[he.To] {
				continue
			}
			visited[he.To] = true
			queue = append(queue, int32(he.To))
			depthOf = append(depthOf, d+1)
		}
	}
	return queue
}

func (s *BFSSampler) ConnectionProbabilities(v int, out []float64) int {
	counts := s.accumulate(v, 0, s.used)
	return s.finalize(counts, s.used, out)
}

func (s *BFSSampler) ConnectionProbabilitiesCache(v int, c *cache.Cache, out []float64) int {
	el := c.GetOrNew(v, s.n)
	if s.used > el.SamplesSeen {
		delta := s.accumulate(v, el.SamplesSeen, s.used)
		for u := 0; u < s.n; u++ {
			el.Counts[u] += delta[u]
		}
		el.SamplesSeen = s.used
	}
	return s.finalize(el.Counts, el.SamplesSeen, out)
}

func (s *BFSSampler) ConnectionProbability(vertices []int) float64 {
	if len(vertices) == 0 || s.used == 0 {
		return 0
	}
	visited := make([]bool, s.n)
	queue := make([]int32, 0, s.n)
	count := 0
	for w := 0; w < s.used; w++ {
		reach := s.bfsReach(vertices[0], s.retained[w], visited, queue)
		reachSet := make(map[int32]struct{}, len(reach))
		for _, u := range reach {
			reachSet[u] = struct{}{}
		}
		ok := true
		for _, u := range vertices[1:] {
			if _, in := reachSet[int32(u)]; !in {
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

func (s *BFSSampler) accumulate(v, lo, hi int) []int32 {
	total := hi - lo
	out := make([]int32, s.n)
	if total <= 0 {
		return out
	}
	workers := defaultWorkers()
	partials := make([][]int32, workers)
	forEachRange(total, workers, func(worker, rlo, rhi int) {
		buf := make([]int32, s.n)
		visited := make([]bool, s.n)
		queue := make([]int32, 0, s.n)
		for w := lo + rlo; w < lo+rhi; w++ {
			reach := s.bfsReach(v, s.retained[w], visited, queue)
			for _, u := range reach {
				buf[u]++
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

func (s *BFSSampler) finalize(counts []int32, samplesSeen int, out []float64) int {
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
