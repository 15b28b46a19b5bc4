package services

import (
	"context"
	"errors"

	"taskbazaar/internal/models"
	"taskbazaar/internal/repositories"
)

// SnapshotService owns the freshness contract for current-status snapshots:
// reads go through the cache, every mutating flow calls Invalidate so the
// next read re-derives its view from a fresh ledger fetch.
type SnapshotService struct {
	Ledger *repositories.LedgerClient
	Cache  *repositories.SnapshotCache
}

// Current returns the user's snapshot, from cache unless force is set or the
// cache misses.
func (s *SnapshotService) Current(ctx context.Context, uid string, force bool) (models.UserCurrentStatus, error) {
	if !force {
		cs, err := s.Cache.Get(ctx, uid)
		if err == nil {
			return cs, nil
		}
		if !errors.Is(err, models.ErrSnapshotNotFound) {
			// cache trouble is not fatal, fall through to the ledger
			_ = s.Cache.Delete(ctx, uid)
		}
	}

	cs, err := s.Ledger.GetCurrentStatus(ctx, uid)
	if err != nil {
		return models.UserCurrentStatus{}, err
	}
	// best effort, the fetch already succeeded
	_ = s.Cache.Set(ctx, cs)
	return cs, nil
}

// Invalidate drops the cached snapshot so allowed actions are never derived
// from pre-mutation state.
func (s *SnapshotService) Invalidate(ctx context.Context, uid string) error {
	return s.Cache.Delete(ctx, uid)
}
