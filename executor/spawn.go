// File: executor/spawn.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Spawn and BlockOn. Spawn never polls inline: the first poll happens on a
// later tick, which both preserves FIFO fairness and avoids unbounded
// call-stack recursion when tasks spawn tasks.

package executor

import (
	"sync/atomic"

	"github.com/momentics/coop-sched/api"
)

// Spawn wraps fut into a schedulable task, appends it to the back of the
// ready queue and returns its handle immediately.
func Spawn[T any](e *Executor, fut api.Future[T]) *Handle[T] {
	e.nextID++
	t := &task{
		id:     e.nextID,
		ex:     e,
		locals: e.regions.Get(),
	}
	h := &Handle[T]{task: t}
	t.run = func(cx *api.Context) api.Poll {
		v, p := fut.Poll(cx)
		if p == api.Ready && !cx.Cancelled() {
			h.value = v
		}
		return p
	}
	t.finish = h.complete
	e.stats.Spawned.Add(1)
	e.enqueue(t)
	return h
}

// BlockOn drives the executor until h resolves and returns its output.
// The woken flag avoids re-polling the handle when nothing changed; ticks
// interleave with the maintenance hook while idle.
//
// Blocking on a task that cannot progress without the current call
// returning deadlocks silently; the runtime does not detect it.
func BlockOn[T any](e *Executor, h *Handle[T]) T {
	var woken atomic.Bool
	woken.Store(true)
	cx := api.NewContext(flagWaker{&woken})
	for {
		if woken.Swap(false) {
			if v, p := h.Poll(cx); p == api.Ready {
				return v
			}
		}
		if !e.Tick() {
			e.idle()
		}
	}
}

// Run spawns fut and blocks until it resolves.
func Run[T any](e *Executor, fut api.Future[T]) T {
	return BlockOn(e, Spawn(e, fut))
}

// flagWaker records wake-ups in a flag the BlockOn loop consumes.
type flagWaker struct {
	woken *atomic.Bool
}

func (w flagWaker) Wake() { w.woken.Store(true) }

func (w flagWaker) WillWake(other api.Waker) bool {
	o, ok := other.(flagWaker)
	return ok && o.woken == w.woken
}
