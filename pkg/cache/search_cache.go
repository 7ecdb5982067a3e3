package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"wander/internal/planner"
)

// SearchCache keeps recent event-search responses so repeated filter
// submissions from the edit dialog skip Postgres. Entries are short-lived;
// staleness just means a search misses a freshly created event until the
// TTL passes.
type SearchCache interface {
	Get(ctx context.Context, key string) ([]planner.Event, bool)
	Set(ctx context.Context, key string, events []planner.Event, ttl time.Duration)
}

// FilterKey derives a stable cache key from the normalized filter set.
func FilterKey(filters planner.SearchFilters) string {
	raw, err := json.Marshal(filters)
	if err != nil {
		return "search:invalid"
	}
	return fmt.Sprintf("search:%s", raw)
}

type redisSearchCache struct {
	rdb *redis.Client
}

func NewSearchCache(rdb *redis.Client) SearchCache {
	return &redisSearchCache{rdb: rdb}
}

func (c *redisSearchCache) Get(ctx context.Context, key string) ([]planner.Event, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("search cache get failed: %v", err)
		}
		return nil, false
	}

	var events []planner.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		log.Printf("search cache entry corrupt, dropping: %v", err)
		c.rdb.Del(ctx, key)
		return nil, false
	}
	return events, true
}

func (c *redisSearchCache) Set(ctx context.Context, key string, events []planner.Event, ttl time.Duration) {
	raw, err := json.Marshal(events)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("search cache set failed: %v", err)
	}
}
