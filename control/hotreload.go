// control/hotreload.go
// Manages global hot-reload hooks for config changes.
// Adds a TriggerHotReloadSync for deterministic test notification.

package control

import "sync"

var (
	reloadMu    sync.RWMutex
	reloadHooks []func()
)

// RegisterReloadHook adds a new component reload listener.
// Safe for concurrent registration.
func RegisterReloadHook(fn func()) {
	reloadMu.Lock()
	reloadHooks = append(reloadHooks, fn)
	reloadMu.Unlock()
}

func snapshotReloadHooks() []func() {
	reloadMu.RLock()
	defer reloadMu.RUnlock()
	hooks := make([]func(), len(reloadHooks))
	copy(hooks, reloadHooks)
	return hooks
}

// TriggerHotReload dispatches all reload hooks asynchronously.
func TriggerHotReload() {
	for _, fn := range snapshotReloadHooks() {
		go fn()
	}
}

// TriggerHotReloadSync invokes all reload hooks synchronously (for test determinism).
func TriggerHotReloadSync() {
	for _, fn := range snapshotReloadHooks() {
		fn()
	}
}
