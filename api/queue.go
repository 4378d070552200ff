// File: api/queue.go
// Package api defines the bounded event queue contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// EventQueue is a fixed-capacity FIFO of events with an interrupt-safe
// producer side and a single-consumer foreground side.
type EventQueue interface {
	// Enqueue inserts at the tail; false if full or code is EventNone.
	// Safe to call from interrupt-style producer contexts.
	Enqueue(code, param int) bool
	// Dequeue removes the oldest event. Foreground-only, single consumer.
	// Returns ok=false without mutation when empty.
	Dequeue() (Event, bool)
	// Len returns the current number of queued events. May be transiently
	// stale under concurrent modification.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
	// IsEmpty reports Len() == 0.
	IsEmpty() bool
	// IsFull reports Len() == Cap().
	IsFull() bool
}
