// File: reactor/sleep.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Sleep future. Does no work and resolves once its deadline is reached.

package reactor

import (
	"time"

	"github.com/momentics/coop-sched/api"
	"github.com/momentics/coop-sched/clock"
)

// Sleep is a future that completes at a fixed instant.
type Sleep struct {
	r        *Reactor
	clk      clock.Clock
	deadline clock.Instant
	// registered remembers the waker stored in the reactor so a re-poll by
	// the same task does not accumulate duplicate entries.
	registered api.Waker
}

// NewSleep returns a future completing after d on clk.
func NewSleep(r *Reactor, clk clock.Clock, d time.Duration) *Sleep {
	return NewSleepUntil(r, clk, clk.Now().Add(d))
}

// NewSleepUntil returns a future completing once clk reaches deadline.
func NewSleepUntil(r *Reactor, clk clock.Clock, deadline clock.Instant) *Sleep {
	return &Sleep{r: r, clk: clk, deadline: deadline}
}

// Deadline returns the instant the future resolves at.
func (s *Sleep) Deadline() clock.Instant {
	return s.deadline
}

// Poll implements api.Future. A pending poll re-registers with the reactor
// only when the stored waker would not wake the current polling task.
func (s *Sleep) Poll(cx *api.Context) (struct{}, api.Poll) {
	if cx.Cancelled() {
		return struct{}{}, api.Ready
	}
	if !s.clk.Now().Before(s.deadline) {
		return struct{}{}, api.Ready
	}
	if s.registered == nil || !s.registered.WillWake(cx.Waker()) {
		s.r.Push(cx.Waker(), s.deadline)
		s.registered = cx.Waker()
	}
	return struct{}{}, api.Pending
}
