//go:build !linux
// +build !linux

// File: internal/platform/pin_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without an affinity syscall binding: the OS-thread
// lock from PinCurrentThread still applies, CPU binding is a no-op.

package platform

func pinThread(cpu int) error {
	return nil
}
