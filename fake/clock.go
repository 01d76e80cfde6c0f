// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"time"

	"github.com/momentics/coop-sched/clock"
)

// Clock is a manually advanced Instant source for deterministic tests.
type Clock struct {
	now clock.Instant
}

// NewClock creates a clock starting at the given instant.
func NewClock(start clock.Instant) *Clock {
	return &Clock{now: start}
}

// Now returns the current reading.
func (c *Clock) Now() clock.Instant { return c.now }

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// AdvanceTo jumps the clock to at; moving backwards is ignored.
func (c *Clock) AdvanceTo(at clock.Instant) {
	if c.now.Before(at) {
		c.now = at
	}
}
