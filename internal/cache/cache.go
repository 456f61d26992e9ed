// Package cache wraps Redis as a best-effort JSON cache for read-heavy
// listings. Every operation degrades to a miss/no-op when Redis is not
// configured or unreachable; the cache is never on a correctness path.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// New builds a Cache. An empty addr disables caching entirely; the returned
// value is still safe to use.
func New(addr, password string, db int, ttl time.Duration, log logger.Logger) *Cache {
	c := &Cache{ttl: ttl, logger: log}
	if addr == "" {
		log.Warn("redis addr is empty, response caching disabled")
		return c
	}

	c.rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, response caching disabled",
			logger.String("addr", addr),
			logger.String("error", err.Error()),
		)
		c.rdb = nil
	}

	return c
}

// GetJSON reports whether the key was found and unmarshalled into dest.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Debug("cache entry corrupt, dropping",
			logger.String("key", key),
		)
		c.rdb.Del(ctx, key)
		return false
	}

	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, val any) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(val)
	if err != nil {
		c.logger.Debug("cache marshal failed", logger.String("key", key))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Debug("cache set failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("cache invalidate failed", logger.String("error", err.Error()))
	}
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
