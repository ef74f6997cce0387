package catalog

import (
	"context"
	"sync/atomic"
	"time"
)

// HealthWatcher periodically probes the backend and tracks whether it is
// reachable. Probe failures are swallowed; they only flip the flag and are
// logged, never surfaced to the user.
type HealthWatcher struct {
	cache  *Cache
	online atomic.Bool
}

// NewHealthWatcher returns a watcher that starts out assuming the backend
// is online.
func NewHealthWatcher(cache *Cache) *HealthWatcher {
	w := &HealthWatcher{cache: cache}
	w.online.Store(true)
	return w
}

// Online reports the result of the most recent probe.
func (w *HealthWatcher) Online() bool { return w.online.Load() }

// Run probes the backend every interval until ctx is cancelled. Each probe
// gets its own short timeout so a hung backend cannot stall the ticker.
func (w *HealthWatcher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *HealthWatcher) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := w.cache.Health(probeCtx)
	cancel()

	was := w.online.Load()
	now := err == nil
	if was != now {
		w.online.Store(now)
		if now {
			w.cache.log.Info(ctx, "backend is back online")
		} else {
			w.cache.log.Warn(ctx, "backend went offline", "error", err)
		}
	}
}
