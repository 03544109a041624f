package scores

import (
	"testing"

	"github.com/go-ugraph/relclust/cache"
	"github.com/go-ugraph/relclust/cluster"
	"github.com/go-ugraph/relclust/guesser"
	"github.com/go-ugraph/relclust/internal/testgraphs"
	"github.com/go-ugraph/relclust/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisjointTrianglesScoresAreExact(t *testing.T) {
	g := testgraphs.DisjointTriangles(3, 1.0)
	s, err := sampler.NewCCSampler(g, 21, 0.1, 0.1, 0.1)
	require.NoError(t, err)
	c := cache.New(10)
	e := cluster.NewMinProbEngine(g, s, c, 3, 0)
	gs := guesser.NewExpBisect(0.5, 0.05)
	res, err := e.Run(gs)
	require.NoError(t, err)

	basic := ComputeBasic(res.Clustering)
	assert.Equal(t, 1.0, basic.PMin)
	assert.InDelta(t, 1.0, basic.AvgP, 1e-9)
	assert.Equal(t, 3, basic.NumClusters)

	acr := ComputeACR(res.Clustering, s)
	assert.InDelta(t, 1.0, acr, 1e-9)

	inner, outer, err := ComputeAVPR(res.Clustering, s)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, inner, 1e-9)
	assert.InDelta(t, 0.0, outer, 1e-9)
	assert.GreaterOrEqual(t, inner, 0.0)
	assert.LessOrEqual(t, inner, 1.0)
	assert.GreaterOrEqual(t, outer, 0.0)
	assert.LessOrEqual(t, outer, 1.0)
}

func TestAVPRUnsupportedForBFSSampler(t *testing.T) {
	g := testgraphs.Path(4, 1.0)
	s, err := sampler.NewBFSSampler(g, 1, 0, 0.1, 0.1, 0.1)
	require.NoError(t, err)
	c := cache.New(10)
	e := cluster.NewMinProbEngine(g, s, c, 1, 0)
	gs := guesser.NewExpBisect(0.5, 0.05)
	res, err := e.Run(gs)
	require.NoError(t, err)

	_, _, err = ComputeAVPR(res.Clustering, s)
	assert.ErrorIs(t, err, ErrAVPRUnsupported)
}
