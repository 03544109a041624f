package cluster

import (
	"testing"

	"github.com/go-ugraph/relclust/cache"
	"github.com/go-ugraph/relclust/internal/testgraphs"
	"github.com/go-ugraph/relclust/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentEngineCoversTriangle(t *testing.T) {
	g := testgraphs.Triangle(1.0)
	s, err := sampler.NewCCSampler(g, 5, 0.1, 0.1, 0.1)
	require.NoError(t, err)
	c := cache.New(10)

	e := NewConcurrentEngine(g, s, c, 1, 0.01, 5)
	res, err := e.Run(1.0)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Clustering.CountUncovered())
	assert.Greater(t, res.Rounds, 0)
}

func TestConcurrentEngineDisjointTriangles(t *testing.T) {
	g := testgraphs.DisjointTriangles(3, 1.0)
	s, err := sampler.NewCCSampler(g, 11, 0.1, 0.1, 0.1)
	require.NoError(t, err)
	c := cache.New(10)

	e := NewConcurrentEngine(g, s, c, 2, 0.01, 11)
	res, err := e.Run(1.0)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Clustering.CountUncovered())
	for v := 0; v < g.NumVertices(); v++ {
		assert.Equal(t, 1.0, res.Clustering.Probability(v))
	}
}

func TestConcurrentEngineShrinkReducesCenters(t *testing.T) {
	g := testgraphs.DisjointTriangles(4, 1.0)
	s, err := sampler.NewCCSampler(g, 13, 0.1, 0.1, 0.1)
	require.NoError(t, err)
	c := cache.New(10)

	e := NewConcurrentEngine(g, s, c, g.NumVertices(), 0.01, 13)
	res, err := e.Run(1.0)
	require.NoError(t, err)

	before := countCenters(res.Clustering)
	e.Shrink(res.Clustering, 2)
	after := countCenters(res.Clustering)
	assert.LessOrEqual(t, after, before)
	assert.LessOrEqual(t, after, 2)
	assert.Equal(t, 0, res.Clustering.CountUncovered())
}

func countCenters(c *Clustering) int {
	n := 0
	for v := 0; v < c.NumVertices(); v++ {
		if c.IsCenter(v) {
			n++
		}
	}
	return n
}
