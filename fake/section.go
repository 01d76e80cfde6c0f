// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "sync/atomic"

// Section counts critical-section entries and exits so tests can assert
// acquire/release discipline.
type Section struct {
	acquires atomic.Uint64
	releases atomic.Uint64
	depth    atomic.Int64
}

func (s *Section) Acquire() uintptr {
	s.acquires.Add(1)
	s.depth.Add(1)
	return 0
}

func (s *Section) Release(_ uintptr) {
	s.releases.Add(1)
	s.depth.Add(-1)
}

// Acquires reports the number of Acquire calls.
func (s *Section) Acquires() uint64 { return s.acquires.Load() }

// Balanced reports whether every Acquire has been matched by a Release.
func (s *Section) Balanced() bool { return s.depth.Load() == 0 }
