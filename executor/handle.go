// File: executor/handle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Task handle: the externally visible, awaitable and cancellable reference
// to a spawned unit of work.

package executor

import "github.com/momentics/coop-sched/api"

// Handle refers to a spawned task producing a T. It is itself a future
// (joining), so one task can await another.
type Handle[T any] struct {
	task      *task
	value     T
	done      bool
	cancelled bool
	detached  bool
	join      api.Waker
}

// ID returns the task identifier.
func (h *Handle[T]) ID() uint64 {
	if h.task == nil {
		return 0
	}
	return h.task.id
}

// Done reports whether the task finished (completed or cancelled).
func (h *Handle[T]) Done() bool { return h.done }

// Cancelled reports whether the task was discarded by Cancel.
func (h *Handle[T]) Cancelled() bool { return h.cancelled }

// Value returns the task's output once Done and not Cancelled; the zero
// value otherwise.
func (h *Handle[T]) Value() T { return h.value }

// Detach lets the task run to completion with no owner observing it.
func (h *Handle[T]) Detach() { h.detached = true }

// Cancel discards the task: it receives one final teardown poll so guards
// held across await points are released, then its remaining code never
// runs. Cancelling a finished or already-cancelled task is a no-op.
func (h *Handle[T]) Cancel() {
	t := h.task
	if t == nil || t.state == taskDone || t.cancelled {
		return
	}
	t.cancelled = true
	if t.state == taskIdle {
		t.ex.enqueue(t)
	}
}

// Poll implements api.Future: it resolves to the task's output when the
// task completes. A join on a cancelled task resolves to the zero value.
func (h *Handle[T]) Poll(cx *api.Context) (T, api.Poll) {
	if h.done {
		return h.value, api.Ready
	}
	var zero T
	if cx.Cancelled() {
		return zero, api.Ready
	}
	if w := cx.Waker(); h.join == nil || !h.join.WillWake(w) {
		h.join = w
	}
	return zero, api.Pending
}

func (h *Handle[T]) complete(cancelled bool) {
	h.done = true
	h.cancelled = cancelled
	if h.join != nil {
		h.join.Wake()
		h.join = nil
	}
}
