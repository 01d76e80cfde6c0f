// File: sync/lazy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lazily initialized value. The initializer and the produced value share
// the cell, discriminated by the once state; the initializer reference is
// dropped after first use.

package sync

import "github.com/momentics/coop-sched/api"

// LazyLock initializes its value on first access.
type LazyLock[T any] struct {
	once  Once
	init  func() T
	value T
}

// NewLazyLock creates a lazy cell with its initializer.
func NewLazyLock[T any](init func() T) *LazyLock[T] {
	return &LazyLock[T]{init: init}
}

// Get returns the value if it has already been forced.
func (l *LazyLock[T]) Get() (*T, bool) {
	if l.once.Done() {
		return &l.value, true
	}
	return nil, false
}

// Force returns a future resolving to the value, running the initializer
// exactly once across all contenders.
func (l *LazyLock[T]) Force() *ForceFuture[T] {
	return &ForceFuture[T]{
		lazy: l,
		once: l.once.CallOnce(func() {
			l.value = l.init()
			l.init = nil
		}),
	}
}

// ForceFuture resolves to the lazily initialized value.
type ForceFuture[T any] struct {
	lazy *LazyLock[T]
	once *OnceFuture
}

func (f *ForceFuture[T]) Poll(cx *api.Context) (*T, api.Poll) {
	if cx.Cancelled() {
		return nil, api.Ready
	}
	if _, p := f.once.Poll(cx); p == api.Pending {
		return nil, api.Pending
	}
	return &f.lazy.value, api.Ready
}
