package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrtCacheRoundsToTwoDecimals(t *testing.T) {
	c := NewSqrtCache(10)
	assert.InDelta(t, 2.0, c.Sqrt(4.001), 1e-12)
	assert.Equal(t, 1, c.Len())
	// 4.004 rounds to the same key and is served from the cache.
	assert.InDelta(t, 2.0, c.Sqrt(4.004), 1e-12)
	assert.Equal(t, 1, c.Len())
}

func TestSqrtCacheStopsInsertingWhenFull(t *testing.T) {
	c := NewSqrtCache(3)
	for i := 1; i <= 5; i++ {
		c.Sqrt(float64(i))
	}
	require.Equal(t, 3, c.Len())
	assert.InDelta(t, math.Sqrt(5), c.Sqrt(5), 1e-12)
	assert.InDelta(t, 1.0, c.Sqrt(1), 1e-12)
	assert.Equal(t, 3, c.Len())
}

func TestCachedSqrt(t *testing.T) {
	assert.InDelta(t, 12.0, CachedSqrt(144), 1e-12)
	assert.Zero(t, CachedSqrt(0))
}
