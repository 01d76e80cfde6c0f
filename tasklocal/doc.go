// Package tasklocal
// Author: momentics <momentics@gmail.com>
//
// Per-task private storage. Keys declared at program init reserve slots in
// a package-level template; each task gets a region snapshotting the
// template's initial values, and the executor swaps the current region
// around every poll. With no task being polled, accesses resolve against a
// sentinel region holding the template defaults.
package tasklocal
