// File: clock/clock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral monotonic clock contract. Platform-specific sources live
// in clock_linux.go and clock_stub.go guarded by build tags.

package clock

import "time"

// Instant is a monotonic timestamp in nanoseconds since an arbitrary epoch.
// Instants from different Clock implementations are not comparable.
type Instant int64

// Add returns the instant shifted forward by d.
func (i Instant) Add(d time.Duration) Instant {
	return i + Instant(d)
}

// Sub returns the duration elapsed from o to i.
func (i Instant) Sub(o Instant) time.Duration {
	return time.Duration(i - o)
}

// Before reports whether i precedes o.
func (i Instant) Before(o Instant) bool {
	return i < o
}

// Clock supplies an ever-increasing time value.
type Clock interface {
	Now() Instant
}

// System returns the platform monotonic clock.
func System() Clock {
	return systemClock{}
}

// Elapsed returns the time passed on c since the instant at.
func Elapsed(c Clock, at Instant) time.Duration {
	return c.Now().Sub(at)
}
