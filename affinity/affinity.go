// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for pinning the runtime's OS thread. The scheduler
// emulates a single-core target on hosted builds; locking the executing
// goroutine to one OS thread and that thread to one CPU keeps the timing
// behavior close to the real hardware. Platform-specific implementations
// live in separate files guarded by build tags.

package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that thread
// to the given logical CPU on supported platforms. On unsupported
// platforms the thread lock still applies and an error is returned.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	return setAffinityPlatform(cpuID)
}

// Unpin releases the OS-thread lock taken by Pin.
func Unpin() {
	runtime.UnlockOSThread()
}
