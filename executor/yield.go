// File: executor/yield.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package executor

import "github.com/momentics/coop-sched/api"

// YieldFuture gives up the task's turn exactly once: the first poll
// re-arms the task and returns Pending, the second resolves.
type YieldFuture struct {
	polled bool
}

// Yield returns a future that suspends the caller for one scheduling turn.
func Yield() *YieldFuture {
	return &YieldFuture{}
}

func (y *YieldFuture) Poll(cx *api.Context) (struct{}, api.Poll) {
	if y.polled || cx.Cancelled() {
		return struct{}{}, api.Ready
	}
	y.polled = true
	cx.Waker().Wake()
	return struct{}{}, api.Pending
}
