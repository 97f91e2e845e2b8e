package cli

import (
	"context"
	"time"
)

// StartOnlineStatusWatcher probes the backend health endpoint on a fixed
// interval and flips the prompt's online/offline marker. No retries, no
// backoff; the probe result of each tick stands on its own. Stops when ctx
// is cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.client.Ping(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
