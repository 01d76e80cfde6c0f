// Package executor
// Author: momentics <momentics@gmail.com>
//
// The cooperative task executor: a strict round-robin, one-poll-per-tick
// scheduler over a FIFO ready queue. Spawn enqueues without polling,
// Tick advances the timer reactor and polls at most one runnable, and
// BlockOn drives ticks until a handle resolves, idling on the reactor's
// next deadline when there is no work.
//
// Everything here runs on one logical execution context; concurrency is
// interleaving at await points, never parallelism. A future that never
// returns Pending starves every other task, and panics inside a polled
// future propagate straight out of Tick and BlockOn.
package executor
