package sessions

import (
	"context"
	"time"

	"resume-screening-backend/internal/shared/telemetry"
)

// StartSweeper periodically deletes expired sessions until ctx is cancelled.
// Lookups already treat expired rows as absent; the sweeper only reclaims
// storage.
func StartSweeper(ctx context.Context, store Store, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := store.DestroyExpired(ctx)
				if err != nil {
					telemetry.Error("sessions.sweep", map[string]any{"error": err.Error()})
					continue
				}
				if removed > 0 {
					telemetry.Info("sessions.sweep", map[string]any{"removed": removed})
				}
			}
		}
	}()
}
