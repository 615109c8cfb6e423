package memory

import (
	"context"
	"sync"
	"time"

	"vetmanager-api-gateway/internal/ports/cache"
)

type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

type responseCache struct {
	mu    sync.Mutex
	items map[string]cacheItem
	now   func() time.Time
}

func NewResponseCache() cache.Store {
	return newResponseCache(time.Now)
}

func newResponseCache(now func() time.Time) *responseCache {
	return &responseCache{items: map[string]cacheItem{}, now: now}
}

func (c *responseCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(it.expiresAt) {
		delete(c.items, key)
		return nil, false, nil
	}
	out := make([]byte, len(it.value))
	copy(out, it.value)
	return out, true, nil
}

func (c *responseCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	c.items[key] = cacheItem{value: v, expiresAt: c.now().Add(ttl)}
	return nil
}
