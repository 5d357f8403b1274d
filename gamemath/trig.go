// Package gamemath holds the pure math helpers shared by every simulation
// system. It has no dependency on the ECS so it can be tested and
// benchmarked in isolation.
package gamemath

import "math"

// TrigTableSize is the number of samples in the sine table (0.1 degree
// resolution over a full turn).
const TrigTableSize = 3600

const trigStep = 2 * math.Pi / TrigTableSize

// sinTable carries one extra sample so interpolation at the last index
// never wraps.
var sinTable [TrigTableSize + 1]float64

func init() {
	for i := 0; i <= TrigTableSize; i++ {
		sinTable[i] = math.Sin(float64(i) * trigStep)
	}
}

// FastSin approximates sin(angle) for an angle in radians using the
// precomputed table with linear interpolation between adjacent samples.
// The error is bounded by the table step; do not use it where exact
// precision matters.
func FastSin(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return math.NaN()
	}
	pos := math.Mod(angle, 2*math.Pi) / trigStep
	if pos < 0 {
		pos += TrigTableSize
	}
	i := int(pos)
	if i >= TrigTableSize {
		i, pos = 0, 0
	}
	frac := pos - float64(i)
	return sinTable[i] + (sinTable[i+1]-sinTable[i])*frac
}

// FastCos approximates cos(angle) through the same table as FastSin.
func FastCos(angle float64) float64 {
	return FastSin(angle + math.Pi/2)
}
