// File: api/dispatch.go
// Package api defines the dispatcher-facing contracts.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// These interfaces decouple producers and loop hosts from the concrete
// facade: an EventSink is anything events can be queued into, a Dispatcher
// additionally drains and dispatches them. The facade Manager implements
// both.

package api

// EventSink accepts produced events.
type EventSink interface {
	// QueueEvent routes an event to the queue for pri; false if that
	// queue is full or code is EventNone. Safe from interrupt-style
	// producer contexts.
	QueueEvent(code, param int, pri Priority) bool
}

// Dispatcher drains queued events and dispatches them to listeners.
// Process calls are foreground-only.
type Dispatcher interface {
	EventSink

	// ProcessEvent dispatches at most one event, preferring the
	// high-priority queue, and returns the number of listener
	// invocations.
	ProcessEvent() int

	// ProcessAllEvents drains the high-priority queue to exhaustion,
	// then the low-priority queue, and returns the cumulative listener
	// invocation count.
	ProcessAllEvents() int
}
