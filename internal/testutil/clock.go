package testutil

import (
	"sync"
	"time"
)

// FrozenClock provides a deterministic instant source for tests.
//
// The conversion packages never read the system clock; operations that
// need "now" (marker strings) take the instant as a parameter. Tests
// use a FrozenClock so the same scenario produces identical strings on
// every run.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type FrozenClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFrozenClock creates a clock frozen at the given instant.
func NewFrozenClock(at time.Time) *FrozenClock {
	return &FrozenClock{now: at}
}

// Now returns the frozen instant.
func (c *FrozenClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new instant.
func (c *FrozenClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set repositions the clock at a specific instant.
func (c *FrozenClock) Set(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = at
}
