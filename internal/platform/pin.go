// File: internal/platform/pin.go
// Package platform provides OS-specific pinning for the dispatch thread.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The event pump can optionally pin its foreground dispatch loop to one CPU
// so the single-consumer contract also maps to a single core, mirroring the
// one-CPU execution model the queue protocol is designed for. Pinning is
// best-effort: platforms without an implementation lock the OS thread only.

package platform

import "runtime"

// PinCurrentThread locks the calling goroutine to its OS thread and, where
// supported, binds that thread to the given CPU. cpu < 0 locks only.
func PinCurrentThread(cpu int) error {
	runtime.LockOSThread()
	if cpu < 0 {
		return nil
	}
	return pinThread(cpu)
}

// UnpinCurrentThread releases the OS-thread lock taken by PinCurrentThread.
func UnpinCurrentThread() {
	runtime.UnlockOSThread()
}
