// File: sync/mutex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex with a guarded payload and sticky poisoning. The fast path is a
// test-and-set inside the platform critical section; the async path polls
// the fast path each turn.

package sync

import (
	"github.com/momentics/coop-sched/api"
	"github.com/momentics/coop-sched/critical"
)

const (
	mutexUnlocked uint32 = iota
	mutexLocked
	mutexPoisoned
)

// Mutex guards a payload of type T. The zero value is not usable; construct
// with NewMutex.
type Mutex[T any] struct {
	state uint32
	data  T
}

// NewMutex creates an unlocked mutex around data.
func NewMutex[T any](data T) *Mutex[T] {
	return &Mutex[T]{data: data}
}

// TryLock attempts the Unlocked -> Locked transition without waiting.
// Panics if the mutex is poisoned; poisoning never clears.
func (m *Mutex[T]) TryLock() (*Guard[T], bool) {
	var acquired, poisoned bool
	critical.With(func() {
		switch m.state {
		case mutexUnlocked:
			m.state = mutexLocked
			acquired = true
		case mutexPoisoned:
			poisoned = true
		}
	})
	if poisoned {
		panic("sync: lock of poisoned mutex")
	}
	if !acquired {
		return nil, false
	}
	return &Guard[T]{m: m}, true
}

// Lock returns a future resolving to the guard once the lock is acquired.
// Acquisition order under contention is queue order, not strict FIFO.
func (m *Mutex[T]) Lock() *LockFuture[T] {
	return &LockFuture[T]{m: m}
}

// IsPoisoned reports whether a holder terminated abnormally with the lock.
func (m *Mutex[T]) IsPoisoned() bool {
	var p bool
	critical.With(func() { p = m.state == mutexPoisoned })
	return p
}

// LockFuture resolves to a mutex guard.
type LockFuture[T any] struct {
	m *Mutex[T]
}

// Poll retries the fast path once per invocation, staying in the ready
// rotation until the lock is free.
func (f *LockFuture[T]) Poll(cx *api.Context) (*Guard[T], api.Poll) {
	if cx.Cancelled() {
		return nil, api.Ready
	}
	if g, ok := f.m.TryLock(); ok {
		return g, api.Ready
	}
	cx.Waker().Wake()
	return nil, api.Pending
}

// Guard gives access to the payload of a held mutex.
type Guard[T any] struct {
	m        *Mutex[T]
	released bool
}

// Value returns the guarded payload. Valid only while the guard is held.
func (g *Guard[T]) Value() *T {
	return &g.m.data
}

// Unlock releases the mutex. Unlocking twice is a no-op.
func (g *Guard[T]) Unlock() {
	if g.released {
		return
	}
	g.released = true
	critical.With(func() {
		if g.m.state == mutexLocked {
			g.m.state = mutexUnlocked
		}
	})
}

// Release is the deferred form of Unlock. When the holder is unwinding it
// marks the mutex poisoned instead of unlocking, then resumes the panic;
// any later Lock or TryLock panics.
func (g *Guard[T]) Release() {
	if r := recover(); r != nil {
		g.poison()
		panic(r)
	}
	g.Unlock()
}

func (g *Guard[T]) poison() {
	if g.released {
		return
	}
	g.released = true
	critical.With(func() {
		g.m.state = mutexPoisoned
	})
}
