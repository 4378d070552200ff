// File: adapters/pump.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Pump hosts the foreground dispatch loop for applications that do not have
// their own poll loop to call ProcessAllEvents from. It runs the drain on a
// dedicated goroutine with adaptive nanosecond backoff while idle, an
// optional CPU pin for the dispatch thread, and a graceful Stop. Because the
// pump goroutine becomes the single foreground context, the application must
// not call Process*, listener management, or Dequeue itself while the pump
// runs; QueueEvent from any goroutine remains the intended producer path.
//
// A Pump is single-use: once Run has returned, the pump stays stopped and a
// later Run reports ErrStopped. Create a new Pump to restart dispatching.

package adapters

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/momentics/evq/api"
	"github.com/momentics/evq/internal/platform"
)

// Pump lifecycle states.
const (
	pumpIdle int32 = iota
	pumpRunning
	pumpStopped
)

// Pump drives Dispatcher.ProcessAllEvents on a dedicated goroutine.
type Pump struct {
	mgr      api.Dispatcher
	pinCPU   int
	quitCh   chan struct{}
	doneCh   chan struct{}
	state    atomic.Int32
	stopOnce sync.Once
}

// NewPump creates a pump for mgr with CPU pinning disabled.
func NewPump(mgr api.Dispatcher) *Pump {
	return &Pump{
		mgr:    mgr,
		pinCPU: -1,
		quitCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// SetPinCPU requests that the dispatch goroutine be locked to its OS thread
// and bound to the given CPU when Run starts. Must be called before Run.
func (p *Pump) SetPinCPU(cpu int) {
	p.pinCPU = cpu
}

// Run executes the drain loop until Stop is called. Returns
// api.ErrAlreadyRunning while another Run is active and api.ErrStopped once
// the pump has completed a lifecycle. Blocks; callers normally invoke it as
// `go pump.Run()`.
func (p *Pump) Run() error {
	if !p.state.CompareAndSwap(pumpIdle, pumpRunning) {
		if p.state.Load() == pumpRunning {
			return api.ErrAlreadyRunning
		}
		return api.ErrStopped
	}
	defer func() {
		p.state.Store(pumpStopped)
		close(p.doneCh)
	}()

	if p.pinCPU >= 0 {
		if err := platform.PinCurrentThread(p.pinCPU); err == nil {
			defer platform.UnpinCurrentThread()
		}
	}

	backoffNs := int64(1)
	const maxBackoffNs = int64(1_000_000)

	// Reusable timer, initially stopped.
	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}

	for {
		select {
		case <-p.quitCh:
			return nil
		default:
		}

		if p.mgr.ProcessAllEvents() > 0 {
			backoffNs = 1
			continue
		}

		timer.Reset(time.Duration(backoffNs) * time.Nanosecond)
		select {
		case <-p.quitCh:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			return nil
		case <-timer.C:
			backoffNs *= 2
			if backoffNs > maxBackoffNs {
				backoffNs = maxBackoffNs
			}
		}
	}
}

// Stop signals the loop to exit and waits for it to finish draining the
// current pass. Safe to call more than once, including concurrently. A Stop
// before Run does not wait; it leaves the pump poisoned so a later Run
// returns immediately.
func (p *Pump) Stop() {
	p.stopOnce.Do(func() { close(p.quitCh) })
	if p.state.Load() != pumpIdle {
		<-p.doneCh
	}
}

// Running reports whether the drain loop is active.
func (p *Pump) Running() bool {
	return p.state.Load() == pumpRunning
}
