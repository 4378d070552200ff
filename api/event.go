// File: api/event.go
// Package api defines the public contracts of the evq event-dispatch core.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Event is the unit of notification flowing through the queues: a plain
// (code, parameter) integer pair. Events are immutable values; queue slots
// hold them by value and no event ever references heap storage.

package api

// Event is a (code, parameter) notification pair.
type Event struct {
	Code  int // application-defined event code; EventNone is reserved
	Param int // event payload, meaning defined by the code
}

// Priority selects one of the two event queues.
// High-priority events are always drained or checked before low-priority ones.
type Priority int

const (
	// LowPriority is the default tier for queued events.
	LowPriority Priority = iota
	// HighPriority events are dispatched strictly before low-priority ones.
	HighPriority
)

// String returns the tier name for logs and debug probes.
func (p Priority) String() string {
	if p == HighPriority {
		return "high"
	}
	return "low"
}

// Predefined event codes, provided for convenience. Any integer value can be
// used as an event code; only EventNone is reserved.
const (
	// EventNone is the reserved "no event" sentinel. It is never a valid
	// queued event: Enqueue rejects it and empty dequeues report it.
	EventNone = 200 + iota

	// EventKeyPress notifies a key press; param: key code.
	EventKeyPress
	// EventKeyRelease notifies a key release; param: key code.
	EventKeyRelease
	// EventChar notifies a character; param: the character.
	EventChar

	// EventTime is a generic time event; param: a time value whose exact
	// meaning is defined by the producer.
	EventTime

	// Generic timer events; param: same as EventTime.
	EventTimer0
	EventTimer1
	EventTimer2
	EventTimer3

	// Analog reads (last digit = channel); param: value read.
	EventAnalog0
	EventAnalog1
	EventAnalog2
	EventAnalog3
	EventAnalog4
	EventAnalog5

	// Menu events.
	EventMenu0
	EventMenu1
	EventMenu2
	EventMenu3
	EventMenu4
	EventMenu5
	EventMenu6
	EventMenu7
	EventMenu8
	EventMenu9

	// EventSerial notifies serial input; param: the received byte.
	EventSerial

	// EventPaint requests a repaint of a display surface.
	EventPaint

	// User-defined events.
	EventUser0
	EventUser1
	EventUser2
	EventUser3
	EventUser4
	EventUser5
	EventUser6
	EventUser7
	EventUser8
	EventUser9
)
