//go:build unix
// +build unix

// File: adapters/signal_unix.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// SignalProducer turns OS signals into queued events: the hosted stand-in
// for hardware interrupt lines. Each mapped signal enqueues its configured
// (code, param) pair on the producer goroutine, exactly the way an interrupt
// handler would call QueueEvent, and a full ring drops the event silently,
// matching the interrupt-context contract.

package adapters

import (
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/momentics/evq/api"
)

// SignalProducer forwards mapped OS signals into an EventSink tier.
type SignalProducer struct {
	mgr api.EventSink
	pri api.Priority

	mu      sync.Mutex
	mapping map[os.Signal]api.Event
	ch      chan os.Signal
	doneCh  chan struct{}
	started bool
}

// NewSignalProducer creates a producer queueing into the given tier, with
// SIGUSR1 and SIGUSR2 pre-mapped to EventUser0 and EventUser1.
func NewSignalProducer(mgr api.EventSink, pri api.Priority) *SignalProducer {
	return &SignalProducer{
		mgr: mgr,
		pri: pri,
		mapping: map[os.Signal]api.Event{
			unix.SIGUSR1: {Code: api.EventUser0},
			unix.SIGUSR2: {Code: api.EventUser1},
		},
	}
}

// Map binds sig to (code, param), replacing any previous binding.
// Must be called before Start.
func (sp *SignalProducer) Map(sig os.Signal, code, param int) error {
	if sig == nil || code == api.EventNone {
		return api.ErrInvalidArgument
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.started {
		return api.ErrAlreadyRunning
	}
	sp.mapping[sig] = api.Event{Code: code, Param: param}
	return nil
}

// Start subscribes to the mapped signals and begins forwarding.
func (sp *SignalProducer) Start() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.started {
		return api.ErrAlreadyRunning
	}
	sigs := make([]os.Signal, 0, len(sp.mapping))
	for sig := range sp.mapping {
		sigs = append(sigs, sig)
	}
	sp.ch = make(chan os.Signal, 16)
	sp.doneCh = make(chan struct{})
	signal.Notify(sp.ch, sigs...)
	go sp.forward(sp.ch, sp.doneCh)
	sp.started = true
	return nil
}

func (sp *SignalProducer) forward(ch chan os.Signal, done chan struct{}) {
	defer close(done)
	for sig := range ch {
		sp.mu.Lock()
		ev, ok := sp.mapping[sig]
		sp.mu.Unlock()
		if ok {
			// Full ring drops the event, as an interrupt handler would.
			sp.mgr.QueueEvent(ev.Code, ev.Param, sp.pri)
		}
	}
}

// Stop unsubscribes and waits for the forwarding goroutine to exit.
func (sp *SignalProducer) Stop() {
	sp.mu.Lock()
	if !sp.started {
		sp.mu.Unlock()
		return
	}
	signal.Stop(sp.ch)
	close(sp.ch)
	done := sp.doneCh
	sp.started = false
	sp.mu.Unlock()
	<-done
}
