// Package cache provides a small read-through cache used by the SDK to avoid
// refetching slow-changing API data (like the API key scope) on every call.
// Values are stored under string keys by a Provider which can be implemented
// by in-memory, redis, memcache, etc.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the expiration applied when the caller passes a zero ttl
const DefaultTTL time.Duration = 5 * time.Minute

// SkipCacheTTL is the TTL set when the cache should not store the value
const SkipCacheTTL time.Duration = -1

// Provider is the interface for the cache backend
type Provider interface {
	// GetValue gets the value in the cache key (if any)
	GetValue(ctx context.Context, key string) (string, bool)
	// SetValue sets the value in the cache key to val with the given expiration time
	SetValue(ctx context.Context, key string, val string, ttl time.Duration)
	// DeleteValue deletes the value in the passed in key
	DeleteValue(ctx context.Context, key string)
	// Flush flushes the cache
	Flush(ctx context.Context)
	// GetName returns the name of the cache for logging purposes
	GetName() string
}
