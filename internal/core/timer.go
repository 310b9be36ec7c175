package core

import "time"

// Clock is the only source of time the game reads.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to.
// Used for deterministic simulation and tests.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current reading.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Timer is an immutable countdown. Restarting a countdown means building a
// new Timer.
type Timer struct {
	clock    Clock
	start    time.Time
	duration time.Duration
}

// NewTimer starts a countdown of length d on the given clock.
func NewTimer(clock Clock, d time.Duration) Timer {
	return Timer{
		clock:    clock,
		start:    clock.Now(),
		duration: d,
	}
}

// Duration returns the full length of the countdown.
func (t Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns the time since the timer started.
// A zero Timer reports its whole (zero) duration as elapsed.
func (t Timer) Elapsed() time.Duration {
	if t.clock == nil {
		return t.duration
	}
	return t.clock.Now().Sub(t.start)
}

// TimeLeft returns the remaining time, never below zero.
func (t Timer) TimeLeft() time.Duration {
	left := t.duration - t.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

// Finished reports whether the countdown has reached zero.
func (t Timer) Finished() bool {
	return t.TimeLeft() == 0
}
