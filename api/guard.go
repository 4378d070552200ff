// File: api/guard.go
// Package api defines the Guard (critical section) capability.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Guard is the injectable critical-section capability the event queue uses to
// make its mutations atomic with respect to interrupt-style producers. The
// protocol is deliberately asymmetric: the producer path saves and restores
// the prior state so it composes when the caller is already inside a critical
// section, while the single-consumer path releases unconditionally because it
// is contractually never nested.

package api

// GuardState is the opaque prior state returned by Mask and accepted by
// Restore. Implementations define its meaning; callers only thread it through.
type GuardState uint32

// Guard provides scoped mutual exclusion against asynchronous preemption.
type Guard interface {
	// Mask suppresses preemption and returns the prior state.
	Mask() GuardState

	// Restore re-establishes the state captured by the matching Mask call.
	// Used on the interrupt-callable enqueue path so nested critical
	// sections compose.
	Restore(prev GuardState)

	// Unmask unconditionally re-enables preemption. Used on the
	// foreground-only dequeue path, which is documented as non-nested.
	Unmask()
}
