package core

import "time"

// Clock is a monotonic millisecond tick source.
type Clock interface {
	// Ticks returns milliseconds elapsed since the clock started.
	Ticks() int64
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock that starts counting now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Ticks returns milliseconds elapsed since NewSystemClock.
func (c *SystemClock) Ticks() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is a clock advanced explicitly, for deterministic tests.
type ManualClock struct {
	now int64
}

// NewManualClock creates a manual clock reading start.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

// Ticks returns the current reading.
func (c *ManualClock) Ticks() int64 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.now += ms
}
