// Package facade
// Author: momentics <momentics@gmail.com>
//
// Process-wide entry point to the cooperative runtime. The default runtime
// is created on first use and lives until program exit; application code
// reaches it through the package-level Spawn, BlockOn, Sleep and Yield
// helpers, or threads an explicit *Runtime through instead.
package facade
