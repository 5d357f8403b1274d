package gamemath

import "math"

// DistSq returns the squared distance between two points.
func DistSq(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return dx*dx + dy*dy
}

// Dist returns the distance between two points through the sqrt cache.
func Dist(ax, ay, bx, by float64) float64 {
	return CachedSqrt(DistSq(ax, ay, bx, by))
}

// Direction returns the unit vector from (ax, ay) toward (bx, by) and the
// distance between them. A zero distance yields a zero vector.
func Direction(ax, ay, bx, by float64) (dirX, dirY, dist float64) {
	dx := bx - ax
	dy := by - ay
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}

// CirclesOverlap is the exact circle test: distance² < (r1+r2)².
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	r := ar + br
	return DistSq(ax, ay, bx, by) < r*r
}

// WithinBox is the cheap axis-aligned pre-filter |dx| < d && |dy| < d.
func WithinBox(ax, ay, bx, by, d float64) bool {
	return math.Abs(bx-ax) < d && math.Abs(by-ay) < d
}

// WithinManhattan is the pre-filter |dx| + |dy| < d.
func WithinManhattan(ax, ay, bx, by, d float64) bool {
	return math.Abs(bx-ax)+math.Abs(by-ay) < d
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
