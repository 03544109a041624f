package scores

import (
	"runtime"
	"sync"

	"github.com/go-ugraph/relclust/cluster"
	"github.com/go-ugraph/relclust/sampler"
	"gonum.org/v1/gonum/stat"
)

// Scores collects every diagnostic spec.md §4.9 defines over a finished
// clustering. ACR, InnerAVPR and OuterAVPR default to -1 when not
// requested (they are optional, spec §6 "--with-acr"/"--with-avpr").
type Scores struct {
	PMin        float64
	SumP        float64
	AvgP        float64
	Dispersion  float64
	NumClusters int
	ACR         float64
	InnerAVPR   float64
	OuterAVPR   float64
}

// ComputeBasic computes p_min, Sigma-p, avg_p, a probability-dispersion
// diagnostic (via gonum/stat) and the cluster count, over a finished
// clustering. ACR and AVPR are left at -1 and filled in by ComputeACR /
// ComputeAVPR when requested.
func ComputeBasic(c *cluster.Clustering) Scores {
	n := c.NumVertices()
	probs := make([]float64, n)
	pmin := 1.0
	numClusters := 0
	for v := 0; v < n; v++ {
		p := c.Probability(v)
		probs[v] = p
		if p < pmin {
			pmin = p
		}
		if c.IsCenter(v) {
			numClusters++
		}
	}
	sum := stat.Mean(probs, nil) * float64(n)
	variance := stat.Variance(probs, nil)
	return Scores{
		PMin:        pmin,
		SumP:        sum,
		AvgP:        sum / float64(n),
		Dispersion:  variance,
		NumClusters: numClusters,
		ACR:         -1,
		InnerAVPR:   -1,
		OuterAVPR:   -1,
	}
}

// clusterMembers groups vertex ids by their assigned center.
func clusterMembers(c *cluster.Clustering) map[int][]int {
	groups := make(map[int][]int)
	for v := 0; v < c.NumVertices(); v++ {
		if center, ok := c.CenterOf(v); ok {
			groups[center] = append(groups[center], v)
		}
	}
	return groups
}

// ComputeACR computes ACR (spec §4.9): the size-weighted average, over
// clusters, of the fraction of possible worlds in which the cluster's
// vertices all share one component.
func ComputeACR(c *cluster.Clustering, s sampler.Sampler) float64 {
	groups := clusterMembers(c)
	num, den := 0.0, 0.0
	for _, members := range groups {
		r := s.ConnectionProbability(members)
		num += float64(len(members)) * r
		den += float64(len(members))
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// worldsProvider is implemented by samplers that expose each possible
// world's full component partition (currently only sampler.CCSampler); the
// BFS sampler has no comparable global partition and does not satisfy it.
type worldsProvider interface {
	Worlds() [][]int32
}

// ComputeAVPR computes inner and outer AVPR (spec §4.9): for every world
// and every cluster, tally (|C ∩ K| choose 2) into the inner accumulator
// and Sigma_K |C ∩ K|*(|K| - |C ∩ K|) into the outer one, then normalise.
// The per-world fan-out is grounded on the same worker-buffer/reduce shape
// the sampler package uses for probability estimation: each worker
// accumulates into its own counters, and the reduction happens strictly
// after the join in worker order.
func ComputeAVPR(c *cluster.Clustering, s sampler.Sampler) (inner, outer float64, err error) {
	wp, ok := s.(worldsProvider)
	if !ok {
		return 0, 0, ErrAVPRUnsupported
	}
	worlds := wp.Worlds()
	n := c.NumVertices()

	groups := clusterMembers(c)
	clusterIDs := make([]int, 0, len(groups))
	for center := range groups {
		clusterIDs = append(clusterIDs, center)
	}
	clusterOf := make([]int, n)
	for idx, center := range clusterIDs {
		for _, v := range groups[center] {
			clusterOf[v] = idx
		}
	}
	numClusters := len(clusterIDs)

	innerNorm, outerNorm := 0.0, 0.0
	for _, center := range clusterIDs {
		size := float64(len(groups[center]))
		innerNorm += choose2(size)
		outerNorm += size * (float64(n) - size)
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(worlds) {
		numWorkers = len(worlds)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	type partial struct {
		inner, outer []float64
	}
	partials := make([]partial, numWorkers)
	var wg sync.WaitGroup
	chunk := (len(worlds) + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(worlds) {
			hi = len(worlds)
		}
		if lo >= hi {
			continue
		}
		partials[w] = partial{inner: make([]float64, numClusters), outer: make([]float64, numClusters)}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			compSize := make(map[int32]int)
			compCount := make(map[int32]map[int]int)
			for wi := lo; wi < hi; wi++ {
				world := worlds[wi]
				for k := range compSize {
					delete(compSize, k)
				}
				for k := range compCount {
					delete(compCount, k)
				}
				for v := 0; v < n; v++ {
					comp := world[v]
					compSize[comp]++
					m, ok := compCount[comp]
					if !ok {
						m = make(map[int]int)
						compCount[comp] = m
					}
					m[clusterOf[v]]++
				}
				for comp, size := range compSize {
					for idx, cnt := range compCount[comp] {
						partials[w].inner[idx] += choose2(float64(cnt))
						partials[w].outer[idx] += float64(cnt) * float64(size-cnt)
					}
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	innerSum, outerSum := 0.0, 0.0
	for w := 0; w < numWorkers; w++ {
		if partials[w].inner == nil {
			continue
		}
		for idx := 0; idx < numClusters; idx++ {
			innerSum += partials[w].inner[idx]
			outerSum += partials[w].outer[idx]
		}
	}

	numWorlds := float64(len(worlds))
	if numWorlds == 0 {
		return 0, 0, nil
	}
	innerSum /= numWorlds
	outerSum /= numWorlds

	if innerNorm > 0 {
		inner = innerSum / innerNorm
	}
	if outerNorm > 0 {
		outer = outerSum / outerNorm
	}
	return inner, outer, nil
}

func choose2(x float64) float64 {
	return x * (x - 1) / 2
}
