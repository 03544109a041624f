package cluster

import (
	"testing"

	"github.com/go-ugraph/relclust/cache"
	"github.com/go-ugraph/relclust/guesser"
	"github.com/go-ugraph/relclust/internal/testgraphs"
	"github.com/go-ugraph/relclust/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvgProbTriangleSingleCenter(t *testing.T) {
	g := testgraphs.Triangle(1.0)
	s, err := sampler.NewCCSampler(g, 3, 0.1, 0.1, 0.1)
	require.NoError(t, err)
	c := cache.New(10)

	e := NewAvgProbEngine(g, s, c, 1, 0, 3)
	gs := guesser.NewScoreGuesser(guesser.NewExpBisect(0.5, 0.05))
	res, err := e.Run(gs)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Clustering.CountUncovered())
	assert.InDelta(t, float64(g.NumVertices()), res.BestScore, 1e-9)
}

func TestAvgProbCompletionStepPromotesRemaining(t *testing.T) {
	g := testgraphs.DisjointEdges(2, 1.0)
	s, err := sampler.NewCCSampler(g, 4, 0.1, 0.1, 0.1)
	require.NoError(t, err)
	c := cache.New(10)

	e := NewAvgProbEngine(g, s, c, 4, 0, 4)
	gs := guesser.NewScoreGuesser(guesser.NewExpBisect(0.5, 0.05))
	res, err := e.Run(gs)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Clustering.CountUncovered())
	numCenters := 0
	for v := 0; v < g.NumVertices(); v++ {
		if res.Clustering.IsCenter(v) {
			numCenters++
		}
	}
	assert.Equal(t, 4, numCenters, "target equals n: every vertex becomes its own center")
}

func TestAvgProbBatchedSelectionCovers(t *testing.T) {
	g := testgraphs.DisjointTriangles(2, 1.0)
	s, err := sampler.NewCCSampler(g, 9, 0.1, 0.1, 0.1)
	require.NoError(t, err)
	c := cache.New(10)

	e := NewAvgProbEngine(g, s, c, 2, 2, 9)
	gs := guesser.NewScoreGuesser(guesser.NewExpBisect(0.5, 0.05))
	res, err := e.Run(gs)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Clustering.CountUncovered())
}
