// File: critical/spin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Test-and-set spin section for hosted builds. Single-word CAS with a
// Gosched backoff; regions guarded by it are a few instructions long, so
// contention windows are tiny.

package critical

import (
	"runtime"
	"sync/atomic"
)

// SpinSection is the default section on hosted targets.
type SpinSection struct {
	flag atomic.Uint32
}

// Acquire spins until the flag is won.
func (s *SpinSection) Acquire() uintptr {
	for !s.flag.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
	return 0
}

// Release clears the flag.
func (s *SpinSection) Release(_ uintptr) {
	s.flag.Store(0)
}

// NoopSection is for true single-context targets where masking is handled
// outside this module, and for tests that assert call balance only.
type NoopSection struct{}

func (NoopSection) Acquire() uintptr  { return 0 }
func (NoopSection) Release(_ uintptr) {}
