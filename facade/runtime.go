// File: facade/runtime.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime assembly: executor + clock + introspection, with optional
// single-CPU pinning to emulate the target on hosted builds.

package facade

import (
	stdsync "sync"
	"time"

	"github.com/momentics/coop-sched/affinity"
	"github.com/momentics/coop-sched/api"
	"github.com/momentics/coop-sched/clock"
	"github.com/momentics/coop-sched/control"
	"github.com/momentics/coop-sched/executor"
	"github.com/momentics/coop-sched/reactor"
)

// Options configures runtime construction.
type Options struct {
	// Clock overrides the platform monotonic clock.
	Clock clock.Clock
	// Maintenance runs whenever a tick finds no work.
	Maintenance func()
	// PinCPU, when >= 0, locks the runtime to one OS thread bound to the
	// given CPU. Defaults to -1 (no pinning).
	PinCPU int
}

// Runtime bundles the executor with its introspection surfaces.
type Runtime struct {
	Executor *executor.Executor
	Probes   *control.DebugProbes
	Config   *control.ConfigStore
}

var (
	defaultRuntime *Runtime
	defaultOnce    stdsync.Once
)

// NewRuntime assembles a runtime from options.
func NewRuntime(opts Options) *Runtime {
	ex := executor.New(executor.Config{
		Clock:       opts.Clock,
		Maintenance: opts.Maintenance,
	})
	rt := &Runtime{
		Executor: ex,
		Probes:   control.NewDebugProbes(),
		Config:   control.NewConfigStore(),
	}
	ex.RegisterProbes(rt.Probes)
	pin := opts.PinCPU
	rt.Config.SetConfig(map[string]any{
		"pin_cpu": pin,
	})
	rt.Config.OnReload(func() {
		if v, ok := rt.Config.Get("pin_cpu"); ok {
			if cpu, ok := v.(int); ok && cpu >= 0 {
				_ = affinity.Pin(cpu)
			}
		}
	})
	if pin >= 0 {
		_ = affinity.Pin(pin)
	}
	return rt
}

// Default returns the process-wide runtime, creating it on first use.
func Default() *Runtime {
	defaultOnce.Do(func() {
		if defaultRuntime == nil {
			defaultRuntime = NewRuntime(Options{PinCPU: -1})
		}
	})
	return defaultRuntime
}

// Init installs a custom-configured runtime as the process default. It
// must run before the first Spawn/BlockOn; afterwards it has no effect.
func Init(opts Options) *Runtime {
	defaultOnce.Do(func() {
		defaultRuntime = NewRuntime(opts)
	})
	return defaultRuntime
}

// Spawn schedules fut on the default runtime.
func Spawn[T any](fut api.Future[T]) *executor.Handle[T] {
	return executor.Spawn(Default().Executor, fut)
}

// BlockOn spawns fut on the default runtime and drives the executor until
// it resolves.
func BlockOn[T any](fut api.Future[T]) T {
	return executor.Run(Default().Executor, fut)
}

// Tick advances the default runtime by one scheduling step.
func Tick() bool {
	return Default().Executor.Tick()
}

// Sleep returns a future completing after d.
func Sleep(d time.Duration) *reactor.Sleep {
	ex := Default().Executor
	return reactor.NewSleep(ex.Reactor(), ex.Clock(), d)
}

// SleepUntil returns a future completing once the runtime clock reaches
// deadline.
func SleepUntil(deadline clock.Instant) *reactor.Sleep {
	ex := Default().Executor
	return reactor.NewSleepUntil(ex.Reactor(), ex.Clock(), deadline)
}

// Yield returns a future that gives up the caller's turn once.
func Yield() *executor.YieldFuture {
	return executor.Yield()
}

// DumpState collects every registered debug probe of the default runtime.
func DumpState() map[string]any {
	return Default().Probes.DumpState()
}
