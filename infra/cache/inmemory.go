package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const gcInterval time.Duration = 5 * time.Minute

// InMemoryProvider is the base implementation of the Provider interface
type InMemoryProvider struct {
	cache     *gocache.Cache
	cacheName string
}

// NewInMemoryProvider creates a new InMemoryProvider
func NewInMemoryProvider(cacheName string) *InMemoryProvider {
	return &InMemoryProvider{
		cache:     gocache.New(DefaultTTL, gcInterval),
		cacheName: cacheName,
	}
}

// GetValue implements Provider
func (c *InMemoryProvider) GetValue(ctx context.Context, key string) (string, bool) {
	v, found := c.cache.Get(key)
	if !found {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// SetValue implements Provider
func (c *InMemoryProvider) SetValue(ctx context.Context, key string, val string, ttl time.Duration) {
	if ttl == SkipCacheTTL {
		return
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	c.cache.Set(key, val, ttl)
}

// DeleteValue implements Provider
func (c *InMemoryProvider) DeleteValue(ctx context.Context, key string) {
	c.cache.Delete(key)
}

// Flush implements Provider
func (c *InMemoryProvider) Flush(ctx context.Context) {
	c.cache.Flush()
}

// GetName implements Provider
func (c *InMemoryProvider) GetName() string {
	return c.cacheName
}
