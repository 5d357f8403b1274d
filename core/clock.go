package core

import "time"

// Clock is a fixed-timestep accumulator. Real elapsed time goes in, whole
// simulation steps come out, and the fractional remainder carries over.
type Clock struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
	dropped  int
}

func NewClock(tickRate, maxCatchUp int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxCatchUp <= 0 {
		maxCatchUp = 1
	}
	return &Clock{
		step:     time.Second / time.Duration(tickRate),
		maxSteps: maxCatchUp,
	}
}

// Advance accumulates elapsed and returns how many steps to run. Whole
// steps past the catch-up clamp are discarded so a stall cannot snowball.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	steps := int(c.acc / c.step)
	if steps > c.maxSteps {
		c.dropped += steps - c.maxSteps
		c.acc -= time.Duration(steps-c.maxSteps) * c.step
		steps = c.maxSteps
	}
	c.acc -= time.Duration(steps) * c.step
	return steps
}

// Step is the fixed simulation interval.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Alpha is the carried fraction of a step, for render interpolation.
func (c *Clock) Alpha() float64 {
	return float64(c.acc) / float64(c.step)
}

// Dropped counts the steps discarded by the catch-up clamp.
func (c *Clock) Dropped() int {
	return c.dropped
}
