// Package fake
// Author: momentics <momentics@gmail.com>
//
// Recording Guard implementation for testing. Instead of touching any real
// masking state it appends every Mask/Restore/Unmask call to a trace, so
// tests can assert the asymmetric critical-section protocol of the queue:
// Mask+Restore around enqueue, Mask+Unmask around dequeue, and no guard
// traffic at all on the lock-free empty check or pure reads.

package fake

import (
	"sync"

	"github.com/momentics/evq/api"
)

// Guard records the sequence of guard calls it receives.
type Guard struct {
	mu    sync.Mutex
	calls []string
	depth int
}

var _ api.Guard = (*Guard)(nil)

// NewGuard creates an empty recording guard.
func NewGuard() *Guard {
	return &Guard{}
}

// Mask records the call and returns the nesting depth before the call as
// the prior state.
func (g *Guard) Mask() api.GuardState {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, "Mask")
	prev := api.GuardState(g.depth)
	g.depth++
	return prev
}

// Restore records the call and rewinds the nesting depth to prev.
func (g *Guard) Restore(prev api.GuardState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, "Restore")
	g.depth = int(prev)
}

// Unmask records the call and clears the nesting depth.
func (g *Guard) Unmask() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, "Unmask")
	g.depth = 0
}

// Calls returns a copy of the recorded call sequence.
func (g *Guard) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.calls))
	copy(out, g.calls)
	return out
}

// Reset clears the recorded trace.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = g.calls[:0]
	g.depth = 0
}

// Depth returns the current mask nesting depth.
func (g *Guard) Depth() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.depth
}
