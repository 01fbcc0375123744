package simulation

import (
	"time"

	"github.com/sasha-s/go-deadlock"
)

// Clock is a source of real time.
type Clock interface {
	Now() time.Time
}

// WallClock is a Clock reading the system's monotonic clock.
type WallClock struct{}

// Now ...
func (WallClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to. It is safe for concurrent use.
type ManualClock struct {
	now time.Time
	mu  deadlock.Mutex
}

// NewManualClock returns a ManualClock set to t.
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{now: t}
}

// Now ...
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d and returns the new time.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
