// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Timer reactor. Sleepers are kept in a min-heap ordered by (deadline, seq)
// so entries registered with identical deadlines drain in registration
// order and none is lost behind an equal neighbor.

package reactor

import (
	"container/heap"
	"time"

	"github.com/momentics/coop-sched/api"
	"github.com/momentics/coop-sched/clock"
)

// Sleeper pairs a timer deadline with the waker to fire on expiry.
type Sleeper struct {
	deadline clock.Instant
	seq      uint64
	waker    api.Waker
}

type sleeperHeap []*Sleeper

func (h sleeperHeap) Len() int { return len(h) }

func (h sleeperHeap) Less(i, j int) bool {
	if h[i].deadline == h[j].deadline {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline < h[j].deadline
}

func (h sleeperHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *sleeperHeap) Push(x any) {
	s, ok := x.(*Sleeper)
	if !ok || s == nil {
		return
	}
	*h = append(*h, s)
}

func (h *sleeperHeap) Pop() any {
	old := *h
	n := len(old)
	if n == 0 {
		return (*Sleeper)(nil)
	}
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Reactor tracks pending timer-based suspensions. It is touched from the
// single execution context only; no locking.
type Reactor struct {
	sleepers sleeperHeap
	nextSeq  uint64
}

// New creates an empty reactor.
func New() *Reactor {
	return &Reactor{}
}

// Push registers a timer interest. O(log n).
func (r *Reactor) Push(w api.Waker, deadline clock.Instant) {
	r.nextSeq++
	heap.Push(&r.sleepers, &Sleeper{
		deadline: deadline,
		seq:      r.nextSeq,
		waker:    w,
	})
}

// Advance wakes every sleeper whose deadline has elapsed at now, not just
// the earliest, and reports how many fired.
func (r *Reactor) Advance(now clock.Instant) int {
	woke := 0
	for len(r.sleepers) > 0 {
		next := r.sleepers[0]
		if now.Before(next.deadline) {
			break
		}
		s, ok := heap.Pop(&r.sleepers).(*Sleeper)
		if !ok || s == nil {
			continue
		}
		s.waker.Wake()
		woke++
	}
	return woke
}

// NextDelay returns the time until the earliest pending wake. ok is false
// when no sleepers are registered. An elapsed deadline yields zero, never a
// negative duration.
func (r *Reactor) NextDelay(now clock.Instant) (time.Duration, bool) {
	if len(r.sleepers) == 0 {
		return 0, false
	}
	d := r.sleepers[0].deadline.Sub(now)
	if d < 0 {
		d = 0
	}
	return d, true
}

// Len reports the number of pending sleepers.
func (r *Reactor) Len() int {
	return len(r.sleepers)
}
