// Package cache provides the Redis-backed quote cache adapter.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisQuoteCache implements port.QuoteCache over a Redis instance.
type RedisQuoteCache struct {
	client *redis.Client
}

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisQuoteCache connects a cache to the given Redis instance.
func NewRedisQuoteCache(opts Options) *RedisQuoteCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &RedisQuoteCache{client: rdb}
}

// Get fetches a cached payload. A missing key is (nil, false, nil).
func (c *RedisQuoteCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return payload, true, nil
}

// Set stores a payload with the given TTL.
func (c *RedisQuoteCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *RedisQuoteCache) Close() error {
	return c.client.Close()
}
