// File: facade/evq.go
// Unified facade layer for the evq library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Manager struct, which aggregates the core components
// of evq behind a single facade: two event rings (high and low priority), one
// listener dispatch table, and a Control interface for runtime visibility.
// Producers, including interrupt-style goroutines, hand events to QueueEvent;
// the host application's poll loop calls ProcessEvent or ProcessAllEvents to
// drain the rings and dispatch synchronously through the table.
//
// All listener management and all Process* calls are foreground-only: they
// must come from the single dispatching context. Only QueueEvent (and the
// queue introspection reads) are safe from producer contexts.

package facade

import (
	"github.com/momentics/evq/adapters"
	"github.com/momentics/evq/api"
	"github.com/momentics/evq/core/listener"
	"github.com/momentics/evq/core/queue"
)

// SafetyMode selects whether queue operations are guarded against
// interrupt-style preemption.
type SafetyMode int

const (
	// NotInterruptSafe skips masking entirely. Correct only when every
	// producer and the dispatch loop share one context.
	NotInterruptSafe SafetyMode = iota
	// InterruptSafe guards queue mutation with a critical section so
	// producers may run on asynchronous contexts. The default.
	InterruptSafe
)

// Config holds parameters immutable per Manager.
type Config struct {
	QueueDepth  int        // Events per priority tier (exact capacity)
	ListenerCap int        // Max listener registrations
	Safety      SafetyMode // InterruptSafe or NotInterruptSafe
	Guard       api.Guard  // Optional guard override; nil selects by Safety
	EnableStats bool       // Whether to maintain dispatch counters
}

// DefaultConfig returns default configuration values: capacity 8 per tier,
// 8 registrations, interrupt-safe masking, stats enabled.
func DefaultConfig() *Config {
	return &Config{
		QueueDepth:  queue.DefaultQueueDepth,
		ListenerCap: listener.DefaultTableCap,
		Safety:      InterruptSafe,
		EnableStats: true,
	}
}

// Ensure compile-time interface compliance.
var _ api.Dispatcher = (*Manager)(nil)

// Manager is the main facade type: two priority rings, one dispatch table.
type Manager struct {
	high  *queue.EventRing
	low   *queue.EventRing
	table *listener.Table

	control *adapters.ControlAdapter
	config  *Config
	stats   bool
}

// New constructs a Manager with the given configuration. A nil cfg selects
// DefaultConfig. Both rings share one guard instance so producer and
// consumer mutations exclude each other across tiers as well.
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.QueueDepth < 0 || cfg.ListenerCap < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative capacity").
			WithContext("queue_depth", cfg.QueueDepth).
			WithContext("listener_cap", cfg.ListenerCap)
	}

	g := cfg.Guard
	if g == nil {
		if cfg.Safety == InterruptSafe {
			g = queue.NewSpinGuard()
		} else {
			g = queue.NopGuard{}
		}
	}

	m := &Manager{
		high:    queue.NewEventRing(cfg.QueueDepth, g),
		low:     queue.NewEventRing(cfg.QueueDepth, g),
		table:   listener.NewTable(cfg.ListenerCap),
		control: adapters.NewControlAdapter(),
		config:  cfg,
		stats:   cfg.EnableStats,
	}

	m.control.SetConfig(map[string]any{
		"queue_depth":  m.high.Cap(),
		"listener_cap": m.table.Cap(),
		"safety":       cfg.Safety == InterruptSafe,
	})
	m.control.RegisterDebugProbe("queue.high.len", func() any { return m.high.Len() })
	m.control.RegisterDebugProbe("queue.low.len", func() any { return m.low.Len() })
	m.control.RegisterDebugProbe("listeners.count", func() any { return m.table.NumListeners() })

	return m, nil
}

func (m *Manager) ring(pri api.Priority) *queue.EventRing {
	if pri == api.HighPriority {
		return m.high
	}
	return m.low
}

// QueueEvent inserts an event into the ring for pri. False if that ring is
// full or code is the EventNone sentinel; the caller decides whether to
// drop, retry later, or spill (see adapters.Spill). This is the one entry
// point safe from interrupt-style producer contexts.
func (m *Manager) QueueEvent(code, param int, pri api.Priority) bool {
	ok := m.ring(pri).Enqueue(code, param)
	if m.stats {
		if ok {
			m.control.IncMetric("events.queued", 1)
		} else {
			m.control.IncMetric("events.dropped", 1)
		}
	}
	return ok
}

// ProcessEvent pops and dispatches at most one event per tier. The high
// ring is popped first; if that dispatch handled zero listeners, whether
// because the high ring was empty or because nothing was registered for the
// popped event, one low-priority event is popped and dispatched. Returns
// the number of listener invocations. Foreground-only.
func (m *Manager) ProcessEvent() int {
	handled := 0
	if ev, ok := m.high.Dequeue(); ok {
		handled = m.table.SendEvent(ev.Code, ev.Param)
	}
	if handled == 0 {
		if ev, ok := m.low.Dequeue(); ok {
			handled = m.table.SendEvent(ev.Code, ev.Param)
		}
	}
	if m.stats && handled > 0 {
		m.control.IncMetric("events.handled", int64(handled))
	}
	return handled
}

// ProcessAllEvents drains the high ring to exhaustion, dispatching each
// event, then drains the low ring the same way, and returns the cumulative
// listener invocation count. The high ring is not re-checked while the low
// ring drains. If producers enqueue faster than this loop consumes, it will
// not terminate; bounding producer rates is the caller's responsibility.
// Foreground-only.
func (m *Manager) ProcessAllEvents() int {
	handled := 0
	for {
		ev, ok := m.high.Dequeue()
		if !ok {
			break
		}
		handled += m.table.SendEvent(ev.Code, ev.Param)
	}
	for {
		ev, ok := m.low.Dequeue()
		if !ok {
			break
		}
		handled += m.table.SendEvent(ev.Code, ev.Param)
	}
	if m.stats && handled > 0 {
		m.control.IncMetric("events.handled", int64(handled))
	}
	return handled
}

// AddListener registers l for code. Foreground-only.
func (m *Manager) AddListener(code int, l api.Listener) bool {
	return m.table.AddListener(code, l)
}

// RemoveListener removes the first registration matching (code, l).
func (m *Manager) RemoveListener(code int, l api.Listener) bool {
	return m.table.RemoveListener(code, l)
}

// RemoveListenerAll removes every registration of l and returns the count.
func (m *Manager) RemoveListenerAll(l api.Listener) int {
	return m.table.RemoveListenerAll(l)
}

// EnableListener toggles the first registration matching (code, l).
func (m *Manager) EnableListener(code int, l api.Listener, enable bool) bool {
	return m.table.EnableListener(code, l, enable)
}

// IsListenerEnabled reports whether (code, l) is registered and enabled.
func (m *Manager) IsListenerEnabled(code int, l api.Listener) bool {
	return m.table.IsListenerEnabled(code, l)
}

// SetDefaultListener installs and enables the fallback listener.
func (m *Manager) SetDefaultListener(l api.Listener) bool {
	return m.table.SetDefaultListener(l)
}

// RemoveDefaultListener uninstalls the fallback listener.
func (m *Manager) RemoveDefaultListener() {
	m.table.RemoveDefaultListener()
}

// EnableDefaultListener toggles the fallback listener in place.
func (m *Manager) EnableDefaultListener(enable bool) {
	m.table.EnableDefaultListener(enable)
}

// NumListeners returns the number of live registrations.
func (m *Manager) NumListeners() int {
	return m.table.NumListeners()
}

// IsListenerListEmpty reports whether no listeners are registered.
func (m *Manager) IsListenerListEmpty() bool {
	return m.table.IsEmpty()
}

// IsListenerListFull reports whether the table is at capacity.
func (m *Manager) IsListenerListFull() bool {
	return m.table.IsFull()
}

// IsEventQueueEmpty reports whether the ring for pri holds no events.
// Safe from any context; may be transiently stale.
func (m *Manager) IsEventQueueEmpty(pri api.Priority) bool {
	return m.ring(pri).IsEmpty()
}

// IsEventQueueFull reports whether the ring for pri is at capacity.
// Safe from any context; may be transiently stale.
func (m *Manager) IsEventQueueFull(pri api.Priority) bool {
	return m.ring(pri).IsFull()
}

// NumEventsInQueue returns the depth of the ring for pri.
// Safe from any context; may be transiently stale.
func (m *Manager) NumEventsInQueue(pri api.Priority) int {
	return m.ring(pri).Len()
}

// GetControl returns the Control interface for runtime config, metrics,
// and debug probes.
func (m *Manager) GetControl() api.Control {
	return m.control
}
