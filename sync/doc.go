// Package sync
// Author: momentics <momentics@gmail.com>
//
// Async-aware synchronization primitives for the cooperative runtime:
// Mutex, RwLock, Condvar, Barrier, Once, OnceLock, LazyLock.
//
// Every primitive exposes a wait path as a future the executor polls; the
// futures spin-poll (self-wake, retry on the next turn) instead of keeping
// per-waiter queues. On one core nothing else runs while a task holds a
// lock, so the only state transitions needing a critical section are the
// few instructions racing interrupt handlers.
package sync
