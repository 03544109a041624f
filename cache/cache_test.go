package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrNewCreatesZeroed(t *testing.T) {
	c := New(0)
	el := c.GetOrNew(3, 5)
	require.Len(t, el.Counts, 5)
	for _, v := range el.Counts {
		assert.Equal(t, int32(0), v)
	}
	assert.Equal(t, 0, el.SamplesSeen)
}

func TestGetOrNewReturnsSameElement(t *testing.T) {
	c := New(0)
	el1 := c.GetOrNew(1, 4)
	el1.Counts[0] = 9
	el2 := c.GetOrNew(1, 4)
	assert.Same(t, el1, el2)
	assert.Equal(t, int32(9), el2.Counts[0])
}

func TestHitRate(t *testing.T) {
	c := New(0)
	assert.Equal(t, 0.0, c.HitRate())
	c.GetOrNew(1, 2) // miss
	c.GetOrNew(1, 2) // hit
	c.GetOrNew(2, 2) // miss
	assert.InDelta(t, 1.0/3.0, c.HitRate(), 1e-9)
}

func TestCleanupEvictsLeastAccessed(t *testing.T) {
	c := New(2)
	c.GetOrNew(1, 1)
	c.GetOrNew(2, 1)
	c.GetOrNew(3, 1) // over capacity
	c.SetAccessed(1, 0)
	c.SetAccessed(2, 5)
	c.SetAccessed(3, 5)
	c.Cleanup()
	assert.Equal(t, 2, c.Size())
	assert.False(t, c.Contains(1), "lowest-access entry should be evicted")
	assert.True(t, c.Contains(2))
	assert.True(t, c.Contains(3))
}

func TestCleanupUnbounded(t *testing.T) {
	c := New(0)
	for i := 0; i < 10; i++ {
		c.GetOrNew(i, 1)
	}
	c.Cleanup()
	assert.Equal(t, 10, c.Size())
}

func TestSetAccessedNoopWhenAbsent(t *testing.T) {
	c := New(0)
	c.SetAccessed(42, 100) // should not panic, no entry created
	assert.False(t, c.Contains(42))
}
