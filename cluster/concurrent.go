package cluster

import (
	"container/heap"

	"github.com/go-ugraph/relclust/cache"
	"github.com/go-ugraph/relclust/graph"
	"github.com/go-ugraph/relclust/rng"
	"github.com/go-ugraph/relclust/sampler"
)

// ConcurrentResult is the outcome of a concurrent (batched) engine run.
type ConcurrentResult struct {
	Clustering *Clustering
	TerminalP  float64
	Rounds     int
}

// ConcurrentEngine drives the batched, fractional-coverage variant (spec
// §4.8): each round independently promotes a random subset of uncovered
// vertices to centers, then covers about half the remaining uncovered
// vertices by popping a max-heap of (probability, center, vertex) triples.
type ConcurrentEngine struct {
	g       *graph.Graph
	sampler sampler.Sampler
	cache   *cache.Cache
	batch   int
	pLow    float64
	rng     *rng.Stream

	allCenters []int
	retained   map[[2]int]float64
}

// NewConcurrentEngine constructs the engine. batch is h from spec §4.8;
// pLow is the floor below which a falling p_curr is a logic error.
func NewConcurrentEngine(g *graph.Graph, s sampler.Sampler, c *cache.Cache, batch int, pLow float64, seed uint64) *ConcurrentEngine {
	return &ConcurrentEngine{
		g: g, sampler: s, cache: c, batch: batch, pLow: pLow,
		rng:      rng.New(seed),
		retained: make(map[[2]int]float64),
	}
}

// Run executes the concurrent cover starting from threshold pCurr (spec
// typically starts this at 1.0, the strictest threshold).
func (e *ConcurrentEngine) Run(pCurr float64) (*ConcurrentResult, error) {
	n := e.g.NumVertices()
	working := NewClustering(n)
	rounds := 0

	for working.CountUncovered() > 0 {
		rounds++
		uncovered := uncoveredIDs(working)
		prob := 1.0
		if e.batch < len(uncovered) {
			prob = float64(e.batch) / float64(len(uncovered))
		}

		var newCenters []int
		for _, v := range uncovered {
			if e.rng.NextDouble() < prob {
				working.MakeCenter(v)
				newCenters = append(newCenters, v)
			}
		}
		if len(newCenters) == 0 {
			continue
		}
		e.allCenters = append(e.allCenters, newCenters...)

		remaining := uncoveredIDs(working)
		for {
			// Re-prime the sampler at the (possibly just-halved) threshold
			// before sampling, mirroring the original's retry-loop
			// placement of sampler.min_probability(graph, p_curr).
			e.sampler.MinProbability(pCurr)

			outs := make(map[int][]float64, len(newCenters))
			for _, c := range newCenters {
				buf := make([]float64, n)
				e.sampler.ConnectionProbabilitiesCache(c, e.cache, buf)
				outs[c] = buf
				for _, c2 := range e.allCenters {
					if c2 != c {
						e.retained[pairKey(c, c2)] = buf[c2]
					}
				}
			}

			need := (len(remaining) + 1) / 2
			pq := &maxHeapPQ{}
			heap.Init(pq)
			coverable := make(map[int]bool, len(remaining))
			for _, c := range newCenters {
				buf := outs[c]
				for _, v := range remaining {
					if buf[v] >= pCurr {
						heap.Push(pq, &heapItem{p: buf[v], center: c, vertex: v})
						coverable[v] = true
					}
				}
			}
			if len(coverable) < need {
				pCurr /= 2
				if pCurr < e.pLow {
					return nil, ErrBelowFloor
				}
				continue
			}
			covered := 0
			for pq.Len() > 0 && covered < need {
				item := heap.Pop(pq).(*heapItem)
				if !working.IsUncovered(item.vertex) {
					continue
				}
				working.Cover(item.vertex, item.center, item.p)
				if e.cache.Contains(item.vertex) {
					e.cache.SetAccessed(item.vertex, 0)
				}
				covered++
			}
			break
		}
	}

	return &ConcurrentResult{Clustering: working, TerminalP: pCurr, Rounds: rounds}, nil
}

// Shrink implements the optional shrink pass (spec §4.8): greedy
// star-contraction of the finished clustering down to target super-centers,
// using the pairwise center probabilities retained during the main loop.
// No-op if fewer than target centers exist.
func (e *ConcurrentEngine) Shrink(c *Clustering, target int) {
	centers := make([]int, 0)
	for v := range c.Info {
		if c.IsCenter(v) {
			centers = append(centers, v)
		}
	}
	if len(centers) <= target {
		return
	}

	idx := make(map[int]int, len(centers))
	for i, v := range centers {
		idx[v] = i
	}
	m := newCenterMatrix(len(centers))
	for pair, p := range e.retained {
		a, aok := idx[pair[0]]
		b, bok := idx[pair[1]]
		if aok && bok {
			m.set(a, b, p)
		}
	}

	alive := make([]bool, len(centers))
	for i := range alive {
		alive[i] = true
	}
	aliveCount := len(centers)

	for aliveCount > target {
		hub := -1
		hubScore := -1.0
		for i := 0; i < len(centers); i++ {
			if !alive[i] {
				continue
			}
			score := 0.0
			for j := 0; j < len(centers); j++ {
				if alive[j] && j != i {
					score += m.at(i, j)
				}
			}
			if score > hubScore {
				hubScore = score
				hub = i
			}
		}
		if hub < 0 {
			break
		}

		neighbor := -1
		neighborP := -1.0
		for j := 0; j < len(centers); j++ {
			if alive[j] && j != hub && m.at(hub, j) > neighborP {
				neighborP = m.at(hub, j)
				neighbor = j
			}
		}
		if neighbor < 0 {
			break
		}

		hubVertex, neighborVertex := centers[hub], centers[neighbor]
		for v := range c.Info {
			if center, ok := c.CenterOf(v); ok && center == neighborVertex {
				if v == neighborVertex {
					c.Cover(v, hubVertex, neighborP)
				} else {
					c.Cover(v, hubVertex, c.Probability(v))
				}
			}
		}
		for j := 0; j < len(centers); j++ {
			if alive[j] && j != hub && j != neighbor {
				if m.at(neighbor, j) > m.at(hub, j) {
					m.set(hub, j, m.at(neighbor, j))
				}
			}
		}
		alive[neighbor] = false
		aliveCount--
	}
}

func pairKey(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// heapItem is one (probability, center, vertex) candidate in the
// concurrent engine's coverage max-heap.
type heapItem struct {
	p      float64
	center int
	vertex int
}

// maxHeapPQ is a max-heap of *heapItem ordered by probability descending.
type maxHeapPQ []*heapItem

func (pq maxHeapPQ) Len() int            { return len(pq) }
func (pq maxHeapPQ) Less(i, j int) bool  { return pq[i].p > pq[j].p }
func (pq maxHeapPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *maxHeapPQ) Push(x interface{}) { *pq = append(*pq, x.(*heapItem)) }
func (pq *maxHeapPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
