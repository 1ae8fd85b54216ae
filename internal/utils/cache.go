package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // redis.Nil comparison
	"strconv"       // Version suffix
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Cache stores JSON read models in Redis. A nil *Cache is a valid, disabled
// cache: reads miss and writes are dropped.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache wraps a Redis client; rdb may be nil to disable caching
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// Cache keys of one session's read models at one committed version. A reader
// that races a commit can only write under the version it read, which no later
// reader asks for.
func WalletKey(sessionID string, version int64) string {
	return "wallet:session:" + sessionID + ":v" + strconv.FormatInt(version, 10)
}

func SummaryKey(sessionID string, version int64) string {
	return "summary:session:" + sessionID + ":v" + strconv.FormatInt(version, 10)
}

// Get retrieves a value and unmarshals it into dest
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// Set stores a value with the cache TTL
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

// InvalidateSession drops the read models cached for one version of a session
func (c *Cache) InvalidateSession(ctx context.Context, sessionID string, version int64) error {
	if c == nil {
		return nil
	}
	return c.rdb.Del(ctx, WalletKey(sessionID, version), SummaryKey(sessionID, version)).Err()
}
