// File: sync/rwlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reader-writer lock. Reader count and the exclusive flag are mutually
// exclusive by invariant: a held writer implies zero readers and vice
// versa.

package sync

import (
	"github.com/momentics/coop-sched/api"
	"github.com/momentics/coop-sched/critical"
)

const (
	rwUnlocked uint32 = iota
	rwExclusive
	rwShared
)

// RwLock guards a payload of type T with shared readers or one writer.
type RwLock[T any] struct {
	status  uint32
	readers int
	data    T
}

// NewRwLock creates an unlocked reader-writer lock around data.
func NewRwLock[T any](data T) *RwLock[T] {
	return &RwLock[T]{data: data}
}

// TryRead acquires shared access if no writer holds the lock.
func (l *RwLock[T]) TryRead() (*ReadGuard[T], bool) {
	var ok bool
	critical.With(func() {
		switch l.status {
		case rwUnlocked:
			l.status = rwShared
			l.readers = 1
			ok = true
		case rwShared:
			l.readers++
			ok = true
		}
	})
	if !ok {
		return nil, false
	}
	return &ReadGuard[T]{l: l}, true
}

// TryWrite acquires exclusive access if the lock is fully free.
func (l *RwLock[T]) TryWrite() (*WriteGuard[T], bool) {
	var ok bool
	critical.With(func() {
		if l.status == rwUnlocked {
			l.status = rwExclusive
			ok = true
		}
	})
	if !ok {
		return nil, false
	}
	return &WriteGuard[T]{l: l}, true
}

// Read returns a future resolving to a shared guard.
func (l *RwLock[T]) Read() *ReadFuture[T] {
	return &ReadFuture[T]{l: l}
}

// Write returns a future resolving to an exclusive guard.
func (l *RwLock[T]) Write() *WriteFuture[T] {
	return &WriteFuture[T]{l: l}
}

// ReadFuture resolves to a shared guard.
type ReadFuture[T any] struct {
	l *RwLock[T]
}

func (f *ReadFuture[T]) Poll(cx *api.Context) (*ReadGuard[T], api.Poll) {
	if cx.Cancelled() {
		return nil, api.Ready
	}
	if g, ok := f.l.TryRead(); ok {
		return g, api.Ready
	}
	cx.Waker().Wake()
	return nil, api.Pending
}

// WriteFuture resolves to an exclusive guard.
type WriteFuture[T any] struct {
	l *RwLock[T]
}

func (f *WriteFuture[T]) Poll(cx *api.Context) (*WriteGuard[T], api.Poll) {
	if cx.Cancelled() {
		return nil, api.Ready
	}
	if g, ok := f.l.TryWrite(); ok {
		return g, api.Ready
	}
	cx.Waker().Wake()
	return nil, api.Pending
}

// ReadGuard gives shared access to the payload.
type ReadGuard[T any] struct {
	l        *RwLock[T]
	released bool
}

// Value returns the payload for reading.
func (g *ReadGuard[T]) Value() *T {
	return &g.l.data
}

// Unlock drops this reader; the last reader out fully unlocks.
func (g *ReadGuard[T]) Unlock() {
	if g.released {
		return
	}
	g.released = true
	critical.With(func() {
		g.l.readers--
		if g.l.readers == 0 {
			g.l.status = rwUnlocked
		}
	})
}

// WriteGuard gives exclusive access to the payload.
type WriteGuard[T any] struct {
	l        *RwLock[T]
	released bool
}

// Value returns the payload for writing.
func (g *WriteGuard[T]) Value() *T {
	return &g.l.data
}

// Unlock releases exclusive access.
func (g *WriteGuard[T]) Unlock() {
	if g.released {
		return
	}
	g.released = true
	critical.With(func() {
		g.l.status = rwUnlocked
	})
}
