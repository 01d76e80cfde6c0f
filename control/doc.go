// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime introspection layer: hot-path scheduler counters, a dynamic
// config store with reload listeners, and named debug probes the facade
// wires to the executor and reactor.
package control
