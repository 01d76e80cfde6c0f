// File: critical/critical.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Global provider and the With helper wrapping Acquire/Release pairs.

package critical

import "github.com/momentics/coop-sched/api"

// active is swapped once at platform init, before any task runs.
var active api.Section = &SpinSection{}

// Use installs the platform critical-section capability. Must be called
// before the first task is spawned.
func Use(s api.Section) {
	if s == nil {
		return
	}
	active = s
}

// Active returns the installed section.
func Active() api.Section {
	return active
}

// With runs fn inside the active critical section. fn must be a handful of
// instructions: state tests, counter bumps, flag flips.
func With(fn func()) {
	s := active
	token := s.Acquire()
	defer s.Release(token)
	fn()
}
