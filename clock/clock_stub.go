//go:build !linux
// +build !linux

// File: clock/clock_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable monotonic source for platforms without a direct syscall path.

package clock

type systemClock struct{}

func (systemClock) Now() Instant {
	return anchorNow()
}
