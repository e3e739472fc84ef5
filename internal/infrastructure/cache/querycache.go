package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// QueryCache stores encoded query results under their query key.
type QueryCache interface {
	// Get returns the stored value and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Clear drops every entry owned by this cache.
	Clear(ctx context.Context) error
}

const clearScanCount = 100

// RedisQueryCache keeps query results in Redis under a key prefix,
// letting several dashboard replicas share one fetch per stale window.
type RedisQueryCache struct {
	client *redis.Client
	prefix string // e.g. "statsboard:query:"
}

var _ QueryCache = (*RedisQueryCache)(nil)

// NewRedisQueryCache creates a new RedisQueryCache instance
func NewRedisQueryCache(client *redis.Client, prefix string) *RedisQueryCache {
	return &RedisQueryCache{
		client: client,
		prefix: prefix,
	}
}

func (c *RedisQueryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.buildKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get query %s from redis: %w", key, err)
	}
	return data, true, nil
}

func (c *RedisQueryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := c.client.Set(ctx, c.buildKey(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store query %s in redis: %w", key, err)
	}
	return nil
}

func (c *RedisQueryCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	redisKeys := make([]string, len(keys))
	for i, key := range keys {
		redisKeys[i] = c.buildKey(key)
	}
	if err := c.client.Del(ctx, redisKeys...).Err(); err != nil {
		return fmt.Errorf("failed to delete queries from redis: %w", err)
	}
	return nil
}

func (c *RedisQueryCache) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", clearScanCount).Result()
		if err != nil {
			return fmt.Errorf("failed to scan query keys: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete query keys: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (c *RedisQueryCache) buildKey(key string) string {
	return c.prefix + key
}
