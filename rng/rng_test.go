package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.NextDouble(), b.NextDouble())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 16; i++ {
		if a.NextDouble() != b.NextDouble() {
			same = false
			break
		}
	}
	assert.False(t, same, "distinct seeds should not produce identical streams")
}

func TestNextDoubleRange(t *testing.T) {
	s := New(7)
	for i := 0; i < 10000; i++ {
		v := s.NextDouble()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestWorkerStreamsDiverge(t *testing.T) {
	root := New(123)
	w0 := WorkerStream(root, 0)
	w1 := WorkerStream(root, 1)
	w2 := WorkerStream(root, 1) // re-derive same index, must match w1

	d0, d1, d2 := w0.NextDouble(), w1.NextDouble(), w2.NextDouble()
	require.NotEqual(t, d0, d1)
	assert.Equal(t, d1, d2)
}

func TestJumpIsDeterministic(t *testing.T) {
	a := New(99)
	b := New(99)
	a.Jump()
	b.Jump()
	for i := 0; i < 50; i++ {
		require.Equal(t, a.NextDouble(), b.NextDouble())
	}
}

func TestNextIntnBounds(t *testing.T) {
	s := New(5)
	for i := 0; i < 1000; i++ {
		v := s.NextIntn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	assert.Equal(t, 0, s.NextIntn(0))
}
