// File: api/listener.go
// Package api defines the Listener contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A Listener is a registered callback invoked synchronously when a matching
// event is dispatched. Listener identity is Go interface equality: the same
// value that was registered must be presented to remove or toggle the
// registration. Implementations must therefore be comparable; pointer
// receivers are the recommended shape (see adapters.Callback for wrapping
// plain functions in a unique pointer identity).

package api

// Listener handles one dispatched event.
type Listener interface {
	// HandleEvent is invoked synchronously on the dispatching context.
	// It must not block and must not mutate the listener table it is
	// registered in while a dispatch scan is in progress.
	HandleEvent(code, param int)
}
