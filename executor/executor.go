// File: executor/executor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The executor proper: ready queue, tick step, TLS base switching, task
// finalization and recycling. The queue and all task state are touched
// from the single execution context only; the structure needs no locking.

package executor

import (
	"runtime"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/coop-sched/api"
	"github.com/momentics/coop-sched/clock"
	"github.com/momentics/coop-sched/control"
	"github.com/momentics/coop-sched/pool"
	"github.com/momentics/coop-sched/reactor"
	"github.com/momentics/coop-sched/tasklocal"
)

// maxIdleWait caps how long BlockOn sleeps between ticks so external wakes
// are observed promptly even with distant timer deadlines.
const maxIdleWait = time.Millisecond

// Config carries executor construction options.
type Config struct {
	// Clock supplies monotonic time to the reactor. Defaults to the
	// platform clock.
	Clock clock.Clock

	// Maintenance, when set, runs whenever a tick found no work. The
	// platform hangs non-async housekeeping here (I/O buffer flushing,
	// watchdog feeding).
	Maintenance func()
}

// Executor owns the ready queue and drives tasks to completion.
type Executor struct {
	cfg     Config
	clk     clock.Clock
	ready   *queue.Queue
	timers  *reactor.Reactor
	stats   *control.Stats
	current *task
	nextID  uint64

	regions *pool.SyncPool[*tasklocal.Region]
}

// New constructs an executor.
func New(cfg Config) *Executor {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.System()
	}
	return &Executor{
		cfg:    cfg,
		clk:    clk,
		ready:  queue.New(),
		timers: reactor.New(),
		stats:  &control.Stats{},
		regions: pool.NewSyncPoolReset(
			tasklocal.NewRegion,
			func(r *tasklocal.Region) { r.Reset() },
		),
	}
}

// Reactor returns the executor's timer reactor.
func (e *Executor) Reactor() *reactor.Reactor { return e.timers }

// Clock returns the executor's time source.
func (e *Executor) Clock() clock.Clock { return e.clk }

// Stats returns the scheduler counters.
func (e *Executor) Stats() *control.Stats { return e.stats }

// Pending reports the current ready-queue depth.
func (e *Executor) Pending() int { return e.ready.Length() }

// RegisterProbes wires executor introspection into a probe registry.
func (e *Executor) RegisterProbes(dp *control.DebugProbes) {
	dp.RegisterProbe("sched.ready", func() any { return e.ready.Length() })
	dp.RegisterProbe("sched.sleepers", func() any { return e.timers.Len() })
	dp.RegisterProbe("sched.stats", func() any { return e.stats.Snapshot() })
}

// Tick advances the reactor by one step, then pops and polls at most one
// runnable from the front of the queue. It reports whether any work
// occurred. Panics from the polled future propagate to the caller.
func (e *Executor) Tick() bool {
	woke := e.timers.Advance(e.clk.Now())
	if woke > 0 {
		e.stats.TimerWakes.Add(uint64(woke))
	}
	if e.ready.Length() == 0 {
		return woke > 0
	}
	t := e.ready.Remove().(*task)
	e.poll(t)
	return true
}

func (e *Executor) enqueue(t *task) {
	if t.state == taskQueued || t.state == taskDone {
		return
	}
	t.state = taskQueued
	e.ready.Add(t)
	e.stats.ObserveQueueDepth(e.ready.Length())
}

// poll runs one poll step of t with its TLS region installed.
func (e *Executor) poll(t *task) {
	if t.state == taskDone {
		return
	}
	t.state = taskRunning
	t.rearm = false
	e.current = t
	prev := tasklocal.SetCurrent(t.locals)
	defer func() {
		tasklocal.SetCurrent(prev)
		e.current = nil
	}()

	e.stats.Polls.Add(1)
	var cx *api.Context
	if t.cancelled {
		cx = api.NewCancelContext(taskWaker{t})
	} else {
		cx = api.NewContext(taskWaker{t})
	}
	res := t.run(cx)

	switch {
	case t.cancelled:
		// The teardown poll happened; the task is discarded regardless of
		// what it returned.
		e.finalize(t, true)
		e.stats.Cancelled.Add(1)
	case res == api.Ready:
		e.finalize(t, false)
		e.stats.Completed.Add(1)
	default:
		t.state = taskIdle
		if t.rearm {
			e.enqueue(t)
		}
	}
}

func (e *Executor) finalize(t *task, cancelled bool) {
	t.state = taskDone
	if t.locals != nil {
		e.regions.Put(t.locals)
		t.locals = nil
	}
	if t.finish != nil {
		t.finish(cancelled)
	}
	t.run = nil
	t.finish = nil
}

// idle runs the maintenance hook and parks briefly, bounded by the
// reactor's next deadline.
func (e *Executor) idle() {
	if e.cfg.Maintenance != nil {
		e.cfg.Maintenance()
	}
	if d, ok := e.timers.NextDelay(e.clk.Now()); ok {
		if d > maxIdleWait {
			d = maxIdleWait
		}
		if d > 0 {
			time.Sleep(d)
		}
		return
	}
	runtime.Gosched()
}
