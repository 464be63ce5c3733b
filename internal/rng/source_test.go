package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Deterministic(t *testing.T) {
	a, b := NewSource(7), NewSource(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int(), b.Int())
	}
}

func TestSource_Ranges(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 10_000; i++ {
		v := src.Next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)

		o := src.NextOpen()
		require.Greater(t, o, 0.0)
		require.Less(t, o, 1.0)

		u := src.Uniform32(-2, 3)
		require.GreaterOrEqual(t, u, float32(-2))
		require.Less(t, u, float32(3))
	}
}

func TestNarrow(t *testing.T) {
	assert.Equal(t, math.Nextafter32(1, 0), narrow(0.99999999999, 0, 1))
	assert.Equal(t, float32(0.5), narrow(0.5, 0, 1))
	// Degenerate ranges pass through.
	assert.Equal(t, float32(1), narrow(1, 1, 1))
}
