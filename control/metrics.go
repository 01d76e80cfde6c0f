// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Hot-path scheduler counters. Fields are atomics so external probes can
// read them without entering the execution context.

package control

import "sync/atomic"

// Stats accumulates scheduler activity counters.
type Stats struct {
	Spawned    atomic.Uint64
	Completed  atomic.Uint64
	Cancelled  atomic.Uint64
	Polls      atomic.Uint64
	TimerWakes atomic.Uint64
	QueuePeak  atomic.Int64
}

// ObserveQueueDepth records a ready-queue depth sample, keeping the peak.
func (s *Stats) ObserveQueueDepth(n int) {
	for {
		peak := s.QueuePeak.Load()
		if int64(n) <= peak {
			return
		}
		if s.QueuePeak.CompareAndSwap(peak, int64(n)) {
			return
		}
	}
}

// Snapshot returns the current counter values as a metrics map.
func (s *Stats) Snapshot() map[string]any {
	return map[string]any{
		"tasks.spawned":   s.Spawned.Load(),
		"tasks.completed": s.Completed.Load(),
		"tasks.cancelled": s.Cancelled.Load(),
		"sched.polls":     s.Polls.Load(),
		"timer.wakes":     s.TimerWakes.Load(),
		"queue.peak":      s.QueuePeak.Load(),
	}
}
