package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"taskbazaar/internal/models"
)

const snapshotKeyPrefix = "snapshot:"

// SnapshotCache keeps recently fetched current-status snapshots in redis so
// repeated home-screen loads do not hammer the ledger. Entries carry a TTL;
// mutating flows delete them explicitly to force a refetch.
type SnapshotCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func (c *SnapshotCache) Get(ctx context.Context, uid string) (models.UserCurrentStatus, error) {
	raw, err := c.Client.Get(ctx, snapshotKeyPrefix+uid).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.UserCurrentStatus{}, models.ErrSnapshotNotFound
	}
	if err != nil {
		return models.UserCurrentStatus{}, err
	}
	var cs models.UserCurrentStatus
	if err := json.Unmarshal(raw, &cs); err != nil {
		return models.UserCurrentStatus{}, err
	}
	return cs, nil
}

func (c *SnapshotCache) Set(ctx context.Context, cs models.UserCurrentStatus) error {
	raw, err := json.Marshal(cs)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, snapshotKeyPrefix+cs.UserID, raw, c.TTL).Err()
}

func (c *SnapshotCache) Delete(ctx context.Context, uid string) error {
	return c.Client.Del(ctx, snapshotKeyPrefix+uid).Err()
}

// DeleteStale scans snapshot keys and removes entries fetched before the
// cutoff. Normal entries expire via TTL; this sweep catches keys written
// without one by older builds.
func (c *SnapshotCache) DeleteStale(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	deleted := 0

	iter := c.Client.Scan(ctx, 0, snapshotKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		raw, err := c.Client.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}
		var cs models.UserCurrentStatus
		if err := json.Unmarshal(raw, &cs); err != nil || cs.FetchedAt.Before(cutoff) {
			if delErr := c.Client.Del(ctx, key).Err(); delErr == nil {
				deleted++
			}
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, err
	}
	return deleted, nil
}
