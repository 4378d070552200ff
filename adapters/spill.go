// File: adapters/spill.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Spill is an opt-in, host-side producer wrapper for callers that cannot
// afford to lose events when the bounded ring is full. Rejected events are
// parked in an unbounded in-memory FIFO and refilled into the ring by
// Drain on the foreground loop. This trades the core's allocation-free
// guarantee for losslessness, which is why it lives in adapters and not in
// the core: embedded-shaped deployments drop on full, host-side tooling can
// choose to spill instead.
//
// Spill is foreground-only. The backing FIFO is not interrupt-safe; do not
// queue through a Spill from interrupt-style producer goroutines.

package adapters

import (
	"github.com/eapache/queue"

	"github.com/momentics/evq/api"
)

// Spill wraps one priority tier of an EventSink with unbounded overflow.
type Spill struct {
	mgr      api.EventSink
	pri      api.Priority
	overflow *queue.Queue
}

// NewSpill creates a spill for the given priority tier of mgr.
func NewSpill(mgr api.EventSink, pri api.Priority) *Spill {
	return &Spill{
		mgr:      mgr,
		pri:      pri,
		overflow: queue.New(),
	}
}

// QueueEvent routes the event to the ring, parking it in the overflow FIFO
// if the ring is full. Returns true when the event went straight to the
// ring, false when it was spilled or rejected as invalid.
func (s *Spill) QueueEvent(code, param int) bool {
	if code == api.EventNone {
		return false
	}
	if s.overflow.Length() == 0 && s.mgr.QueueEvent(code, param, s.pri) {
		return true
	}
	// Spill behind any already-parked events to preserve FIFO order.
	s.overflow.Add(api.Event{Code: code, Param: param})
	return false
}

// Drain moves as many parked events as fit back into the ring, oldest
// first, and returns the number moved. Call from the foreground loop after
// processing, when ring space has been freed.
func (s *Spill) Drain() int {
	moved := 0
	for s.overflow.Length() > 0 {
		ev := s.overflow.Peek().(api.Event)
		if !s.mgr.QueueEvent(ev.Code, ev.Param, s.pri) {
			break
		}
		s.overflow.Remove()
		moved++
	}
	return moved
}

// Pending returns the number of parked events.
func (s *Spill) Pending() int {
	return s.overflow.Length()
}
