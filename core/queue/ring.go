// File: core/queue/ring.go
// Package queue implements the fixed-capacity, interrupt-safe event ring.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// EventRing is a bounded circular buffer of (code, param) pairs shared
// between a single foreground consumer and any number of interrupt-style
// producers. All mutation happens inside the injected Guard; the emptiness
// check on the dequeue path is a lock-free atomic read, because a stale
// "empty" answer only defers the event to the next poll.
//
// Capacity is exact: indices advance by plain modulo, never rounded to a
// power of two, so the documented invariant 0 <= Len() <= Cap() holds for
// the configured capacity. The backing slice is allocated once in the
// constructor; steady-state operation performs no allocation.

package queue

import (
	"sync/atomic"

	"github.com/momentics/evq/api"
)

// DefaultQueueDepth is the per-tier event capacity used when none is given.
const DefaultQueueDepth = 8

// Ensure compile-time interface compliance.
var _ api.EventQueue = (*EventRing)(nil)

// EventRing is a guarded circular buffer of events.
type EventRing struct {
	guard api.Guard
	slots []api.Event
	head  int
	tail  int
	count atomic.Int64
}

// NewEventRing allocates a ring with the given exact capacity, guarded by g.
// capacity < 1 falls back to DefaultQueueDepth; a nil guard gets NopGuard.
func NewEventRing(capacity int, g api.Guard) *EventRing {
	if capacity < 1 {
		capacity = DefaultQueueDepth
	}
	if g == nil {
		g = NopGuard{}
	}
	r := &EventRing{
		guard: g,
		slots: make([]api.Event, capacity),
	}
	for i := range r.slots {
		r.slots[i].Code = api.EventNone
	}
	return r
}

// Enqueue inserts at the tail; false if the ring is full or code is the
// EventNone sentinel. The full-check and the insert form one atomic region:
// a full-check racing an asynchronous insert could otherwise double-write a
// slot or lose the count. Safe from interrupt-style producer contexts; the
// guard state is saved and restored so nested critical sections compose.
func (r *EventRing) Enqueue(code, param int) bool {
	if code == api.EventNone {
		return false
	}
	prev := r.guard.Mask()
	if int(r.count.Load()) == len(r.slots) {
		r.guard.Restore(prev)
		return false
	}
	r.slots[r.tail] = api.Event{Code: code, Param: param}
	r.tail = (r.tail + 1) % len(r.slots)
	r.count.Add(1)
	r.guard.Restore(prev)
	return true
}

// Dequeue removes the oldest event. Foreground-only, single consumer, never
// from an interrupt-style context. The emptiness check takes no critical
// section; the removal itself does, released with an unconditional Unmask
// since this path is contractually never nested inside another critical
// section.
func (r *EventRing) Dequeue() (api.Event, bool) {
	if r.count.Load() == 0 {
		return api.Event{Code: api.EventNone}, false
	}
	r.guard.Mask()
	ev := r.slots[r.head]
	r.slots[r.head] = api.Event{Code: api.EventNone}
	r.head = (r.head + 1) % len(r.slots)
	r.count.Add(-1)
	r.guard.Unmask()
	return ev, true
}

// Len returns the number of queued events. Atomic read; may be transiently
// stale under concurrent enqueues, which is the documented, accepted race.
func (r *EventRing) Len() int {
	return int(r.count.Load())
}

// Cap returns the fixed capacity.
func (r *EventRing) Cap() int {
	return len(r.slots)
}

// IsEmpty reports whether no events are queued. Safe from any context.
func (r *EventRing) IsEmpty() bool {
	return r.count.Load() == 0
}

// IsFull reports whether the ring is at capacity. Safe from any context.
func (r *EventRing) IsFull() bool {
	return int(r.count.Load()) == len(r.slots)
}
