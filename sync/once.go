// File: sync/once.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One-time initialization. Contenders arriving while the initializer runs
// wait for completion instead of re-running it.

package sync

import (
	"github.com/momentics/coop-sched/api"
	"github.com/momentics/coop-sched/critical"
)

const (
	onceUninit uint32 = iota
	onceRunning
	onceComplete
)

// Once runs an initializer exactly once across all contenders.
type Once struct {
	state uint32
}

// Done reports whether the initializer has completed.
func (o *Once) Done() bool {
	var done bool
	critical.With(func() { done = o.state == onceComplete })
	return done
}

// CallOnce returns a future that resolves once fn has run to completion,
// in this task or another. Only the first poll to win the Uninit -> Running
// transition executes fn.
func (o *Once) CallOnce(fn func()) *OnceFuture {
	return &OnceFuture{o: o, fn: fn}
}

// OnceFuture resolves when its Once reaches the complete state.
type OnceFuture struct {
	o  *Once
	fn func()
}

func (f *OnceFuture) Poll(cx *api.Context) (struct{}, api.Poll) {
	if cx.Cancelled() {
		return struct{}{}, api.Ready
	}
	var run, done bool
	critical.With(func() {
		switch f.o.state {
		case onceUninit:
			f.o.state = onceRunning
			run = true
		case onceComplete:
			done = true
		}
	})
	if done {
		return struct{}{}, api.Ready
	}
	if run {
		// The initializer runs outside the critical section; it may be
		// arbitrarily slow.
		f.fn()
		critical.With(func() { f.o.state = onceComplete })
		return struct{}{}, api.Ready
	}
	cx.Waker().Wake()
	return struct{}{}, api.Pending
}
