// Package clock
// Author: momentics <momentics@gmail.com>
//
// Monotonic time source for the reactor. Instant is an opaque nanosecond
// reading from an arbitrary epoch; the platform implementation is selected
// by build tags (clock_linux.go, clock_stub.go).
package clock
