// File: core/listener/table.go
// Package listener implements the fixed-capacity dispatch table.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Table maps event codes to zero or more registered listeners plus one
// optional default listener invoked only when nothing else matched. Storage
// is a fixed array scanned linearly: registration counts are tiny in the
// intended deployments, entries stay in insertion order, and removal
// shift-compacts so the populated prefix remains contiguous.
//
// The table carries no interrupt protection: it is touched only from the
// single foreground dispatch context, never from producer contexts. Mutating
// the table from inside a listener callback while SendEvent is scanning is
// refused: the mutators return false/0 while a scan is in progress. Queueing
// events from a callback is always allowed.

package listener

import "github.com/momentics/evq/api"

// DefaultTableCap is the registration capacity used when none is given.
const DefaultTableCap = 8

type registration struct {
	code     int
	listener api.Listener
	enabled  bool
}

// Table is a fixed-capacity listener dispatch table.
type Table struct {
	entries []registration // populated prefix is [0, count)
	count   int

	fallback        api.Listener
	fallbackEnabled bool

	sending bool // reentrancy latch, set for the duration of a SendEvent scan
}

// NewTable allocates a table with the given registration capacity.
// capacity < 1 falls back to DefaultTableCap.
func NewTable(capacity int) *Table {
	if capacity < 1 {
		capacity = DefaultTableCap
	}
	return &Table{entries: make([]registration, capacity)}
}

// AddListener appends an enabled registration for (code, l).
// False on nil listener, full table, or a dispatch scan in progress.
// Duplicate (code, l) pairs are permitted and will all fire.
func (t *Table) AddListener(code int, l api.Listener) bool {
	if l == nil || t.sending || t.count == len(t.entries) {
		return false
	}
	t.entries[t.count] = registration{code: code, listener: l, enabled: true}
	t.count++
	return true
}

// RemoveListener removes the first registration matching (code, l),
// shifting later entries down to keep the prefix contiguous. Only one match
// is removed even if duplicates exist. False if absent or a scan is running.
func (t *Table) RemoveListener(code int, l api.Listener) bool {
	if l == nil || t.sending {
		return false
	}
	for i := 0; i < t.count; i++ {
		if t.entries[i].code == code && t.entries[i].listener == l {
			t.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveListenerAll removes every registration of l regardless of event
// code and returns the number removed. Zero if a scan is running.
func (t *Table) RemoveListenerAll(l api.Listener) int {
	if l == nil || t.sending {
		return 0
	}
	removed := 0
	for i := 0; i < t.count; {
		if t.entries[i].listener == l {
			t.removeAt(i)
			removed++
		} else {
			i++
		}
	}
	return removed
}

func (t *Table) removeAt(i int) {
	copy(t.entries[i:t.count-1], t.entries[i+1:t.count])
	t.count--
	t.entries[t.count] = registration{}
}

// EnableListener sets the enabled flag on the first (code, l) match.
// False if not found or a scan is running.
func (t *Table) EnableListener(code int, l api.Listener, enable bool) bool {
	if l == nil || t.sending {
		return false
	}
	for i := 0; i < t.count; i++ {
		if t.entries[i].code == code && t.entries[i].listener == l {
			t.entries[i].enabled = enable
			return true
		}
	}
	return false
}

// IsListenerEnabled reports the enabled flag of the first (code, l) match;
// false if not found.
func (t *Table) IsListenerEnabled(code int, l api.Listener) bool {
	if l == nil {
		return false
	}
	for i := 0; i < t.count; i++ {
		if t.entries[i].code == code && t.entries[i].listener == l {
			return t.entries[i].enabled
		}
	}
	return false
}

// SetDefaultListener installs and enables the fallback listener, replacing
// any previous one. False on nil listener or a scan in progress.
func (t *Table) SetDefaultListener(l api.Listener) bool {
	if l == nil || t.sending {
		return false
	}
	t.fallback = l
	t.fallbackEnabled = true
	return true
}

// RemoveDefaultListener uninstalls the fallback listener.
func (t *Table) RemoveDefaultListener() {
	if t.sending {
		return
	}
	t.fallback = nil
	t.fallbackEnabled = false
}

// EnableDefaultListener toggles the fallback listener without removing it.
func (t *Table) EnableDefaultListener(enable bool) {
	if t.sending {
		return
	}
	t.fallbackEnabled = enable
}

// SendEvent dispatches (code, param) to every enabled registration for code,
// in insertion order, and returns the number invoked. If none fired and a
// fallback listener is installed and enabled, it is invoked once and counted
// as 1. The scan is synchronous; table mutators called from inside a
// callback are refused for its duration.
func (t *Table) SendEvent(code, param int) int {
	t.sending = true
	defer func() { t.sending = false }()

	handled := 0
	for i := 0; i < t.count; i++ {
		e := &t.entries[i]
		if e.code == code && e.enabled && e.listener != nil {
			e.listener.HandleEvent(code, param)
			handled++
		}
	}
	if handled == 0 && t.fallback != nil && t.fallbackEnabled {
		t.fallback.HandleEvent(code, param)
		return 1
	}
	return handled
}

// NumListeners returns the number of live registrations.
func (t *Table) NumListeners() int {
	return t.count
}

// IsEmpty reports whether no listeners are registered.
func (t *Table) IsEmpty() bool {
	return t.count == 0
}

// IsFull reports whether the table is at capacity.
func (t *Table) IsFull() bool {
	return t.count == len(t.entries)
}

// Cap returns the fixed registration capacity.
func (t *Table) Cap() int {
	return len(t.entries)
}

// HasDefaultListener reports whether a fallback listener is installed.
func (t *Table) HasDefaultListener() bool {
	return t.fallback != nil
}
