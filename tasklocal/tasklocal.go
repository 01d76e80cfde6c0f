// File: tasklocal/tasklocal.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Slot-indexed task-local storage. The template plays the role of the
// link-time initial image: regions are allocated per task and filled from
// it. All state here is touched from the single execution context only;
// serialization comes from non-preemption, not locks.

package tasklocal

// slot describes one declared task-local variable.
type slot struct {
	initial func() any
}

var (
	template []slot
	sealed   bool
	sentinel *Region
	current  *Region
)

// Key is a handle to one declared task-local variable of type T.
type Key[T any] struct {
	index int
}

// NewKey declares a task-local variable with its initial value and returns
// its key. Declarations must happen before the first region is created;
// late declarations panic, mirroring the fixed link-time template.
func NewKey[T any](initial T) *Key[T] {
	if sealed {
		panic("tasklocal: declaration after template sealed")
	}
	idx := len(template)
	template = append(template, slot{
		initial: func() any { return initial },
	})
	return &Key[T]{index: idx}
}

// Region is one task's private copy of the template.
type Region struct {
	slots []any
}

// NewRegion allocates a region and copies the template's initial values in.
// The first region creation seals the template.
func NewRegion() *Region {
	sealed = true
	r := &Region{}
	r.fill()
	return r
}

func (r *Region) fill() {
	if cap(r.slots) < len(template) {
		r.slots = make([]any, len(template))
	} else {
		r.slots = r.slots[:len(template)]
	}
	for i := range template {
		r.slots[i] = template[i].initial()
	}
}

// Reset restores the region to the template's initial values so it can be
// reused for a new task.
func (r *Region) Reset() {
	r.fill()
}

// SetCurrent installs r as the region task-local accesses resolve against
// and returns the previous one. Passing nil installs the sentinel.
func SetCurrent(r *Region) *Region {
	prev := current
	if r == nil {
		r = sentinelRegion()
	}
	current = r
	return prev
}

func sentinelRegion() *Region {
	if sentinel == nil {
		sealed = true
		sentinel = &Region{}
		sentinel.fill()
	}
	return sentinel
}

func currentRegion() *Region {
	if current == nil {
		current = sentinelRegion()
	}
	return current
}

// Get returns the value of the variable in the current region.
func (k *Key[T]) Get() T {
	return currentRegion().slots[k.index].(T)
}

// Set stores v into the variable in the current region.
func (k *Key[T]) Set(v T) {
	currentRegion().slots[k.index] = v
}

// Update applies fn to the current value and stores the result.
func (k *Key[T]) Update(fn func(T) T) {
	r := currentRegion()
	r.slots[k.index] = fn(r.slots[k.index].(T))
}
