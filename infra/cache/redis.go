package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/permitio/permit-golang/infra/plog"
)

// RedisProvider is a Provider backed by a shared redis instance, useful when
// many SDK processes should share one scope cache.
type RedisProvider struct {
	rc        *redis.Client
	prefix    string
	cacheName string
}

// NewRedisProvider creates a new RedisProvider. The prefix namespaces this
// SDK's keys so the redis instance can be shared with the application.
func NewRedisProvider(rc *redis.Client, prefix string, cacheName string) *RedisProvider {
	return &RedisProvider{rc: rc, prefix: prefix, cacheName: cacheName}
}

// NewRedisClient creates a redis client for the given address
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (c *RedisProvider) key(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}

// GetValue implements Provider
func (c *RedisProvider) GetValue(ctx context.Context, key string) (string, bool) {
	v, err := c.rc.Get(ctx, c.key(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			plog.Warningf(ctx, "cache %s: error reading key %s: %v", c.cacheName, key, err)
		}
		return "", false
	}
	return v, true
}

// SetValue implements Provider
func (c *RedisProvider) SetValue(ctx context.Context, key string, val string, ttl time.Duration) {
	if ttl == SkipCacheTTL {
		return
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if err := c.rc.Set(ctx, c.key(key), val, ttl).Err(); err != nil {
		plog.Warningf(ctx, "cache %s: error writing key %s: %v", c.cacheName, key, err)
	}
}

// DeleteValue implements Provider
func (c *RedisProvider) DeleteValue(ctx context.Context, key string) {
	if err := c.rc.Del(ctx, c.key(key)).Err(); err != nil {
		plog.Warningf(ctx, "cache %s: error deleting key %s: %v", c.cacheName, key, err)
	}
}

// Flush implements Provider
// Only removes keys under our prefix; the redis instance may be shared.
func (c *RedisProvider) Flush(ctx context.Context) {
	iter := c.rc.Scan(ctx, 0, c.key("*"), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rc.Del(ctx, iter.Val()).Err(); err != nil {
			plog.Warningf(ctx, "cache %s: error deleting key %s: %v", c.cacheName, iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		plog.Warningf(ctx, "cache %s: error scanning keys: %v", c.cacheName, err)
	}
}

// GetName implements Provider
func (c *RedisProvider) GetName() string {
	return c.cacheName
}
