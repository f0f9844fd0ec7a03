package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// NewSurfaceID returns a fresh identifier for a bound surface.
func NewSurfaceID() string {
	return uuid.NewString()
}

// Clock hands out increasing sequence numbers for the segments of one surface.
type Clock struct {
	counter atomic.Uint64
}

// Tick increments the clock and returns the new value.
func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}

// Now returns the last value handed out, 0 if none.
func (c *Clock) Now() uint64 {
	return c.counter.Load()
}
