// File: adapters/callback.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Callback glue wrapping a plain function in an api.Listener with pointer
// identity. Listener identity in the dispatch table is interface equality,
// and Go function values are not comparable, so every NewCallback call
// yields a distinct pointer: register it, keep the reference, and present
// the same reference to remove or toggle the registration.

package adapters

import "github.com/momentics/evq/api"

// Callback adapts a func(code, param int) into an api.Listener.
type Callback struct {
	fn func(code, param int)
}

var _ api.Listener = (*Callback)(nil)

// NewCallback wraps fn. Returns nil for a nil fn, which the table then
// rejects as an invalid registration.
func NewCallback(fn func(code, param int)) *Callback {
	if fn == nil {
		return nil
	}
	return &Callback{fn: fn}
}

// HandleEvent invokes the wrapped function.
func (c *Callback) HandleEvent(code, param int) {
	c.fn(code, param)
}
