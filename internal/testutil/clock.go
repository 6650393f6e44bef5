package testutil

import (
	"sync"
	"time"
)

// FixedClock is a wall clock frozen at a chosen instant, advanced only by
// the test. It stands in for time.Now wherever a timestamp lands in file
// names or history rows, so runs compare byte for byte.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock frozen at now.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// Now returns the frozen instant. The method value satisfies any
// func() time.Time clock parameter.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Negative durations are allowed;
// the clock does not enforce monotonicity.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
