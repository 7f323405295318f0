package storage

import (
	"context"
	"log/slog"
	"time"
)

// RunSweeper calls store.Sweep every interval until ctx is cancelled.
func RunSweeper(ctx context.Context, store SessionStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := store.Sweep(ctx, now); removed > 0 {
				slog.Info("Expired form sessions removed", "count", removed, "remaining", store.Len())
			}
		}
	}
}
