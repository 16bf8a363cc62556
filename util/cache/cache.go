// Package cache wraps Redis with a small JSON get/set/delete surface.
// A nil Cache (or a Cache built over a nil client) is a valid no-op:
// every read misses and every write is skipped, so callers need no
// redis-is-down branches.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyAvailableCars holds the serialized available-cars listing. Deleted
// by any write that can change availability.
const KeyAvailableCars = "cars:available"

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetJSON unmarshals the value at key into dst and reports a hit.
func (c *Cache) GetJSON(ctx context.Context, key string, dst any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	bs, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(bs, dst) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil || c.rdb == nil {
		return
	}
	bs, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, bs, c.ttl).Err()
}

func (c *Cache) Del(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}
