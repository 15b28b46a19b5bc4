package main

import (
	"context"
	"log"
	"time"

	"taskbazaar/internal/repositories"
)

const (
	snapshotSweeperTimeout  = 1 * time.Minute
	snapshotSweeperInterval = 30 * time.Minute
	snapshotSweeperMaxAge   = 2 * time.Hour
)

// startSnapshotSweeper periodically removes stale snapshot cache entries.
// Regular entries expire through their TTL; the sweep only catches keys that
// ended up without one.
func startSnapshotSweeper(ctx context.Context, cache *repositories.SnapshotCache, infoLog, errorLog *log.Logger) {
	if cache == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(snapshotSweeperInterval)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, snapshotSweeperTimeout)
			deleted, err := cache.DeleteStale(runCtx, snapshotSweeperMaxAge)
			cancel()
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("snapshot sweeper: failed to delete stale snapshots: %v", err)
				}
			} else if deleted > 0 && infoLog != nil {
				infoLog.Printf("snapshot sweeper: removed %d stale snapshots", deleted)
			}
		}

		runOnce()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}
