package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/permitio/permit-golang/infra/assert"
	"github.com/permitio/permit-golang/infra/cache"
)

func TestInMemorySetGet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewInMemoryProvider("testCache")
	assert.Equal(t, c.GetName(), "testCache")

	_, found := c.GetValue(ctx, "missing")
	assert.False(t, found)

	c.SetValue(ctx, "key", "value", 0)
	got, found := c.GetValue(ctx, "key")
	assert.True(t, found)
	assert.Equal(t, got, "value")
}

func TestInMemoryDelete(t *testing.T) {
	ctx := context.Background()
	c := cache.NewInMemoryProvider("testCache")

	c.SetValue(ctx, "key", "value", time.Minute)
	c.DeleteValue(ctx, "key")
	_, found := c.GetValue(ctx, "key")
	assert.False(t, found)
}

func TestInMemoryFlush(t *testing.T) {
	ctx := context.Background()
	c := cache.NewInMemoryProvider("testCache")

	c.SetValue(ctx, "a", "1", time.Minute)
	c.SetValue(ctx, "b", "2", time.Minute)
	c.Flush(ctx)

	_, found := c.GetValue(ctx, "a")
	assert.False(t, found)
	_, found = c.GetValue(ctx, "b")
	assert.False(t, found)
}

func TestInMemorySkipCacheTTL(t *testing.T) {
	ctx := context.Background()
	c := cache.NewInMemoryProvider("testCache")

	c.SetValue(ctx, "key", "value", cache.SkipCacheTTL)
	_, found := c.GetValue(ctx, "key")
	assert.False(t, found)
}

func TestInMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	c := cache.NewInMemoryProvider("testCache")

	c.SetValue(ctx, "key", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	_, found := c.GetValue(ctx, "key")
	assert.False(t, found)
}
