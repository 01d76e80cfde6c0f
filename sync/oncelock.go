// File: sync/oncelock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Write-once cell built on Once.

package sync

import "github.com/momentics/coop-sched/api"

// OnceLock is a cell that can be written exactly once and read many times.
type OnceLock[T any] struct {
	once  Once
	value T
}

// Get returns the stored value if the cell has been initialized.
func (l *OnceLock[T]) Get() (T, bool) {
	if l.once.Done() {
		return l.value, true
	}
	var zero T
	return zero, false
}

// Set stores v if the cell is still empty; otherwise it reports
// api.ErrAlreadyInitialized and leaves the cell untouched.
func (l *OnceLock[T]) Set(v T) error {
	var stored bool
	f := l.once.CallOnce(func() {
		l.value = v
		stored = true
	})
	// The once transition is immediate when uninitialized; a synchronous
	// poll with a no-op waker suffices.
	if _, p := f.Poll(api.NewContext(noopWaker{})); p == api.Ready && stored {
		return nil
	}
	if !stored {
		return api.ErrAlreadyInitialized
	}
	return nil
}

// GetOrInit returns a future resolving to a pointer at the stored value,
// running fn to produce it if the cell is empty. fn runs at most once
// across all contenders.
func (l *OnceLock[T]) GetOrInit(fn func() T) *InitFuture[T] {
	return &InitFuture[T]{
		lock: l,
		once: l.once.CallOnce(func() { l.value = fn() }),
	}
}

// TryInsert stores v if the cell is empty. It returns a pointer to the
// stored value (the existing one on conflict) and whether this call did
// the store.
func (l *OnceLock[T]) TryInsert(v T) (*T, bool) {
	if err := l.Set(v); err != nil {
		return &l.value, false
	}
	return &l.value, true
}

// Take moves the value out, leaving the cell uninitialized again.
func (l *OnceLock[T]) Take() (T, bool) {
	var zero T
	if !l.once.Done() {
		return zero, false
	}
	v := l.value
	l.value = zero
	l.once = Once{}
	return v, true
}

// InitFuture resolves to the cell's value once initialization completes.
type InitFuture[T any] struct {
	lock *OnceLock[T]
	once *OnceFuture
}

func (f *InitFuture[T]) Poll(cx *api.Context) (*T, api.Poll) {
	if cx.Cancelled() {
		return nil, api.Ready
	}
	if _, p := f.once.Poll(cx); p == api.Pending {
		return nil, api.Pending
	}
	return &f.lock.value, api.Ready
}

// noopWaker satisfies polls that cannot suspend.
type noopWaker struct{}

func (noopWaker) Wake() {}

func (noopWaker) WillWake(o api.Waker) bool { _, ok := o.(noopWaker); return ok }
