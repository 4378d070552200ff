//go:build linux
// +build linux

// File: internal/platform/pin_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux CPU pinning via sched_setaffinity on the calling thread.

package platform

import "golang.org/x/sys/unix"

func pinThread(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	// tid 0 targets the calling thread, which PinCurrentThread has locked.
	return unix.SchedSetaffinity(0, &set)
}
