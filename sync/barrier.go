// File: sync/barrier.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cyclic barrier. Arrivals advance a counter modulo the fixed count; the
// arrival completing a cycle is that cycle's sole leader.

package sync

import (
	"github.com/momentics/coop-sched/api"
	"github.com/momentics/coop-sched/critical"
)

// Barrier releases waiters in groups of count.
type Barrier struct {
	count      int
	arrived    int
	generation uint64
}

// NewBarrier creates a barrier for count tasks. A count below one is
// treated as one.
func NewBarrier(count int) *Barrier {
	if count < 1 {
		count = 1
	}
	return &Barrier{count: count}
}

// Wait records an arrival and returns a future resolving once the current
// cycle completes. Exactly one arrival per cycle resolves true: the leader.
func (b *Barrier) Wait() *BarrierFuture {
	var leader bool
	var gen uint64
	critical.With(func() {
		gen = b.generation
		b.arrived++
		if b.arrived == b.count {
			b.arrived = 0
			b.generation++
			leader = true
		}
	})
	return &BarrierFuture{b: b, gen: gen, leader: leader}
}

// BarrierFuture resolves once every task of its cycle has arrived.
type BarrierFuture struct {
	b      *Barrier
	gen    uint64
	leader bool
}

func (f *BarrierFuture) Poll(cx *api.Context) (bool, api.Poll) {
	if f.leader {
		return true, api.Ready
	}
	if cx.Cancelled() {
		return false, api.Ready
	}
	var released bool
	critical.With(func() {
		released = f.b.generation != f.gen
	})
	if released {
		return false, api.Ready
	}
	cx.Waker().Wake()
	return false, api.Pending
}
