package sampler

import (
	"testing"

	"github.com/go-ugraph/relclust/internal/testgraphs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBFSSelfProbabilityIsExactlyOne(t *testing.T) {
	g := testgraphs.Path(4, 0.5)
	s, err := NewBFSSampler(g, 1, 2, 0.2, 0.1, 0.5)
	require.NoError(t, err)
	s.MinProbability(0.3)

	out := make([]float64, g.NumVertices())
	s.ConnectionProbabilities(0, out)
	assert.Equal(t, 1.0, out[0])
}

func TestBFSDepthBoundLimitsReach(t *testing.T) {
	g := testgraphs.Path(5, 1.0) // v0-v1-v2-v3-v4, all deterministic
	s, err := NewBFSSampler(g, 1, 1, 0.2, 0.1, 0.5)
	require.NoError(t, err)
	s.MinProbability(0.5)

	out := make([]float64, g.NumVertices())
	s.ConnectionProbabilities(0, out)
	assert.Equal(t, 1.0, out[1], "within depth 1")
	assert.Equal(t, 0.0, out[2], "beyond depth 1, even though graph connects them")
}

func TestBFSUnboundedDepthMatchesFullReach(t *testing.T) {
	g := testgraphs.Path(4, 1.0)
	s, err := NewBFSSampler(g, 1, 0, 0.2, 0.1, 0.5) // depth<1 -> unbounded
	require.NoError(t, err)
	s.MinProbability(0.5)

	out := make([]float64, g.NumVertices())
	s.ConnectionProbabilities(0, out)
	assert.Equal(t, 1.0, out[3], "unbounded depth reaches the far end")
}
