// Package host drives a Simulation: it owns the frame loop, the clock
// and raw pointer input.
package host

import "time"

// Clock reports monotonic milliseconds since some fixed start.
type Clock interface {
	Millis() float64
}

// WallClock measures real elapsed time.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a wall clock at zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Millis implements Clock.
func (c *WallClock) Millis() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// FrameClock advances by a fixed step per frame, for deterministic runs.
type FrameClock struct {
	StepMS float64
	now    float64
}

// NewFrameClock creates a clock stepping stepMS per Advance.
func NewFrameClock(stepMS float64) *FrameClock {
	return &FrameClock{StepMS: stepMS}
}

// Millis implements Clock.
func (c *FrameClock) Millis() float64 { return c.now }

// Advance moves the clock forward one frame.
func (c *FrameClock) Advance() { c.now += c.StepMS }
