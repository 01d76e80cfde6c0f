// File: sync/condvar.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Condition variable. The wait future keeps the mutex guard for the whole
// wait instead of releasing it to other lockers; callers relying on the
// conventional drop-and-relock protocol must unlock around Wait themselves.

package sync

import (
	"github.com/momentics/coop-sched/api"
	"github.com/momentics/coop-sched/critical"
)

const (
	cvWaiting uint32 = iota
	cvNotifiedOne
	cvNotifiedAll
)

// Condvar lets tasks wait until a notification is delivered.
type Condvar struct {
	state   uint32
	waiting int
}

// NewCondvar creates a condition variable with no pending notification.
func NewCondvar() *Condvar {
	return &Condvar{}
}

// NotifyOne delivers a notification to exactly one waiter. A second notify
// before a waiter consumed the first is a harmless no-op.
func (c *Condvar) NotifyOne() {
	critical.With(func() {
		c.state = cvNotifiedOne
	})
}

// NotifyAll delivers a notification to every current waiter. The state
// returns to waiting only once the last of them has consumed it.
func (c *Condvar) NotifyAll() {
	critical.With(func() {
		c.state = cvNotifiedAll
	})
}

// Waiting reports the number of tasks currently waiting.
func (c *Condvar) Waiting() int {
	var n int
	critical.With(func() { n = c.waiting })
	return n
}

// Wait registers the holder of g as a waiter on c and returns a future
// resolving back to the guard once notified.
func Wait[T any](c *Condvar, g *Guard[T]) *WaitFuture[T] {
	critical.With(func() { c.waiting++ })
	return &WaitFuture[T]{c: c, guard: g}
}

// WaitFuture resolves to the mutex guard once a notification arrives.
type WaitFuture[T any] struct {
	c     *Condvar
	guard *Guard[T]
}

func (f *WaitFuture[T]) Poll(cx *api.Context) (*Guard[T], api.Poll) {
	if cx.Cancelled() {
		critical.With(func() { f.c.waiting-- })
		f.guard.Unlock()
		return nil, api.Ready
	}
	var notified bool
	critical.With(func() {
		switch f.c.state {
		case cvNotifiedOne:
			f.c.state = cvWaiting
			f.c.waiting--
			notified = true
		case cvNotifiedAll:
			f.c.waiting--
			if f.c.waiting == 0 {
				f.c.state = cvWaiting
			}
			notified = true
		}
	})
	if notified {
		return f.guard, api.Ready
	}
	cx.Waker().Wake()
	return nil, api.Pending
}
