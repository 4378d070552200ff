// File: adapters/listener_adapter.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Extensible listener middleware with chain composition. Middleware wraps an
// api.Listener in another api.Listener; chains are applied outermost-first.
// The returned wrappers are *Callback values, so a wrapped listener has its
// own pointer identity in the dispatch table, distinct from the inner one.

package adapters

import (
	"log"

	"github.com/momentics/evq/api"
)

// Middleware transforms one listener into another.
type Middleware func(next api.Listener) api.Listener

// Chain applies middleware to base so that the first element of mw is the
// outermost wrapper.
func Chain(base api.Listener, mw ...Middleware) api.Listener {
	l := base
	for i := len(mw) - 1; i >= 0; i-- {
		l = mw[i](l)
	}
	return l
}

// LoggingMiddleware logs every event before handing it to the next listener.
// The evq analogue of debug serial prints: attach it per-listener during
// bring-up, remove it for production builds.
func LoggingMiddleware(next api.Listener) api.Listener {
	return NewCallback(func(code, param int) {
		log.Printf("[Listener] event code=%d param=%d", code, param)
		next.HandleEvent(code, param)
	})
}

// RecoveryMiddleware recovers from panics in the wrapped listener so one
// faulty callback cannot tear down the dispatch loop.
func RecoveryMiddleware(next api.Listener) api.Listener {
	return NewCallback(func(code, param int) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Listener] Panic recovered: %v", r)
			}
		}()
		next.HandleEvent(code, param)
	})
}

// MetricsMiddleware accumulates the "listener.processed" counter in ctrl.
// The counter is shared: every listener wrapped by the returned Middleware
// contributes to the same total.
func MetricsMiddleware(ctrl *ControlAdapter) Middleware {
	return func(next api.Listener) api.Listener {
		return NewCallback(func(code, param int) {
			ctrl.IncMetric("listener.processed", 1)
			next.HandleEvent(code, param)
		})
	}
}
