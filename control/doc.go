// Package control
// Author: momentics <momentics@gmail.com>
//
// Hot-reload, runtime metrics, configuration control, and debug introspection
// layer for the evq event-dispatch core. The queue and dispatch hot paths
// stay allocation-free; this package is where runtime visibility lives
// instead: counters for enqueued/dropped/dispatched events, probes exposing
// queue depths and listener counts, and reload hooks for tunable settings.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Runtime observers for hot-reload
//   - Metrics telemetry contracts
//   - State export, debug hooks, and probe registration
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
