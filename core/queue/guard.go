// File: core/queue/guard.go
// Package queue — Guard implementations.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Two hosted renditions of the interrupt-mask capability: SpinGuard, a CAS
// spinlock for builds where producers run on separate goroutines, and
// NopGuard, a zero-overhead no-op for single-context use. Both keep the
// asymmetric Mask/Restore vs Unmask protocol of api.Guard.

package queue

import (
	"runtime"
	"sync/atomic"

	"github.com/momentics/evq/api"
)

var (
	_ api.Guard = (*SpinGuard)(nil)
	_ api.Guard = NopGuard{}
)

// SpinGuard is a CAS spinlock standing in for hardware interrupt masking.
// It serializes queue mutation across goroutine producers and the foreground
// consumer. Mask must not be nested from a single goroutine: unlike a real
// interrupt mask there is no owner tracking, so a nested Mask deadlocks.
type SpinGuard struct {
	flag atomic.Uint32
}

// NewSpinGuard returns a ready-to-use SpinGuard.
func NewSpinGuard() *SpinGuard {
	return &SpinGuard{}
}

// Mask spins until the lock is acquired and returns the prior state
// (always "unmasked" for a spinlock; the token exists to satisfy the
// save/restore protocol).
func (g *SpinGuard) Mask() api.GuardState {
	for !g.flag.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
	return 0
}

// Restore releases the lock back to the captured prior state.
func (g *SpinGuard) Restore(prev api.GuardState) {
	g.flag.Store(uint32(prev))
}

// Unmask unconditionally releases the lock.
func (g *SpinGuard) Unmask() {
	g.flag.Store(0)
}

// NopGuard performs no masking. It is the not-interrupt-safe mode: correct
// only when every queue operation runs on one context, with zero overhead.
type NopGuard struct{}

// Mask is a no-op.
func (NopGuard) Mask() api.GuardState { return 0 }

// Restore is a no-op.
func (NopGuard) Restore(api.GuardState) {}

// Unmask is a no-op.
func (NopGuard) Unmask() {}
