// File: api/critical.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Critical-section capability contract. On the embedded target this is
// backed by interrupt masking; consumed as an opaque pair of operations.

package api

// Section is the platform-supplied critical-section capability. Acquire
// returns an opaque restore token that must be handed back to Release.
//
// Sections guard only a handful of instructions (lock-bit test-and-set,
// counter bumps). On a single core the sole race they close is against
// interrupt and exception handlers, not against other tasks.
type Section interface {
	Acquire() uintptr
	Release(token uintptr)
}
