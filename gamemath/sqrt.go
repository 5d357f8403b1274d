package gamemath

import "math"

// SqrtCacheCapacity bounds the memoized square roots kept by CachedSqrt.
const SqrtCacheCapacity = 1000

// SqrtCache memoizes square roots of inputs rounded to two decimals.
// Once full it stops inserting but keeps serving hits.
type SqrtCache struct {
	capacity int
	values   map[float64]float64
}

func NewSqrtCache(capacity int) *SqrtCache {
	if capacity < 0 {
		capacity = 0
	}
	return &SqrtCache{
		capacity: capacity,
		values:   make(map[float64]float64, capacity),
	}
}

// Sqrt returns the square root of value rounded to two decimal places.
func (c *SqrtCache) Sqrt(value float64) float64 {
	key := math.Round(value*100) / 100
	if r, ok := c.values[key]; ok {
		return r
	}
	r := math.Sqrt(key)
	if len(c.values) < c.capacity {
		c.values[key] = r
	}
	return r
}

// Len reports how many entries are cached.
func (c *SqrtCache) Len() int {
	return len(c.values)
}

var defaultSqrtCache = NewSqrtCache(SqrtCacheCapacity)

// CachedSqrt is Sqrt on the process-wide cache. The simulation is single
// threaded, so the cache is not synchronized.
func CachedSqrt(value float64) float64 {
	return defaultSqrtCache.Sqrt(value)
}
