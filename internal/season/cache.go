package season

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/fortuna/janus/internal/cache"
	"github.com/fortuna/janus/internal/stats"
	"github.com/fortuna/janus/internal/trade"
)

const keyPrefix = "janus:season:"

// KeyValueStore is the subset of cache.RedisCache used for season caching
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// CachedLookup is a read-through cache in front of another SeasonLookup.
// Only successful lookups are cached.
type CachedLookup struct {
	next  trade.SeasonLookup
	store KeyValueStore
	ttl   time.Duration
}

// NewCachedLookup wraps next with a cache
func NewCachedLookup(next trade.SeasonLookup, store KeyValueStore, ttl time.Duration) *CachedLookup {
	return &CachedLookup{next: next, store: store, ttl: ttl}
}

// LookupPlayerSeason returns the cached record for fullName or loads it from next
func (c *CachedLookup) LookupPlayerSeason(ctx context.Context, fullName string) (stats.SeasonRecord, error) {
	key := cacheKey(fullName)

	if raw, err := c.store.Get(ctx, key); err == nil {
		var record stats.SeasonRecord
		if err := json.Unmarshal([]byte(raw), &record); err == nil {
			return record, nil
		}
		log.Printf("[season-cache] ⚠️  Discarding corrupt entry %s", key)
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("[season-cache] ⚠️  Read failed for %s: %v", key, err)
	}

	record, err := c.next.LookupPlayerSeason(ctx, fullName)
	if err != nil {
		return stats.SeasonRecord{}, err
	}

	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("[season-cache] ⚠️  Encoding %s failed: %v", key, err)
		return record, nil
	}
	if err := c.store.Set(ctx, key, string(data), c.ttl); err != nil {
		log.Printf("[season-cache] ⚠️  Write failed for %s: %v", key, err)
	}

	return record, nil
}

func cacheKey(fullName string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(fullName))
}
