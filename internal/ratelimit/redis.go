package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs the limiter with Redis. INCR and SETNX are atomic on the
// server, which satisfies the mutual-exclusion requirement without an
// application-level lock.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing Redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get returns the value for key and whether it was present.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("ratelimit: redis get %s: %w", key, err)
	}
	return val, true, nil
}

// SetIfAbsent stores value under key with the given TTL only when absent.
func (c *RedisCache) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	set, err := c.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit: redis setnx %s: %w", key, err)
	}
	return set, nil
}

// Increment adds one to the counter at key, applying the TTL on creation.
func (c *RedisCache) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("ratelimit: redis incr %s: %w", key, err)
	}
	if count == 1 {
		c.client.Expire(ctx, key, ttl)
	}
	return count, nil
}
