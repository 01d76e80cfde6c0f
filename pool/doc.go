// Package pool
// Author: momentics <momentics@gmail.com>
//
// Generic object recycling for the runtime's per-task allocations (task
// records, task-local regions). Spawn-time allocation failure is fatal on
// the target, so reuse is the cheap way to keep allocation pressure down.
package pool
