// File: executor/task.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Task record and its waker. A task is never in two queue positions: the
// state field gates every enqueue, and a wake landing while the task is
// being polled only re-arms it for one re-enqueue after the poll returns.

package executor

import (
	"github.com/momentics/coop-sched/api"
	"github.com/momentics/coop-sched/tasklocal"
)

type taskState uint8

const (
	taskIdle taskState = iota
	taskQueued
	taskRunning
	taskDone
)

type task struct {
	id        uint64
	ex        *Executor
	state     taskState
	rearm     bool
	cancelled bool
	locals    *tasklocal.Region

	// run is the type-erased runnable body installed by Spawn.
	run func(cx *api.Context) api.Poll
	// finish publishes completion (or cancellation) to the task's handle.
	finish func(cancelled bool)
}

// taskWaker wakes its task by re-enqueueing it.
type taskWaker struct {
	t *task
}

func (w taskWaker) Wake() {
	t := w.t
	switch t.state {
	case taskRunning:
		t.rearm = true
	case taskIdle:
		t.ex.enqueue(t)
	}
	// queued and done: nothing to do
}

func (w taskWaker) WillWake(other api.Waker) bool {
	o, ok := other.(taskWaker)
	return ok && o.t == w.t
}
