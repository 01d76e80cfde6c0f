// Package api
// Author: momentics <momentics@gmail.com>
//
// Contract layer for the coop-sched cooperative runtime.
// Declares the poll/waker future machinery, the platform critical-section
// capability, and the shared error types consumed by every other package.
//
// Nothing in this package schedules or blocks; it only defines the shapes
// the executor, reactor, and synchronization primitives agree on.
package api
