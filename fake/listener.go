// Package fake
// Author: momentics <momentics@gmail.com>
//
// Recording Listener implementation for testing dispatch order, fan-out
// counts, and default-listener fallback.

package fake

import "github.com/momentics/evq/api"

// Listener records every event it receives, in order.
type Listener struct {
	Events []api.Event
}

var _ api.Listener = (*Listener)(nil)

// NewListener creates an empty recording listener.
func NewListener() *Listener {
	return &Listener{}
}

// HandleEvent appends the event to the recorded sequence.
func (l *Listener) HandleEvent(code, param int) {
	l.Events = append(l.Events, api.Event{Code: code, Param: param})
}

// Count returns the number of events received.
func (l *Listener) Count() int {
	return len(l.Events)
}

// Last returns the most recent event, or an EventNone event if none.
func (l *Listener) Last() api.Event {
	if len(l.Events) == 0 {
		return api.Event{Code: api.EventNone}
	}
	return l.Events[len(l.Events)-1]
}

// Reset clears the recorded events.
func (l *Listener) Reset() {
	l.Events = l.Events[:0]
}
