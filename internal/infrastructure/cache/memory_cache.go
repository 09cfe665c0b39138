package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// MemoryCache is an in-process implementation of the cache port with the
// same tag semantics as RedisCache. Used when Redis is disabled and in
// tests. Safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	tags    map[string]map[string]struct{}
}

// NewMemoryCache creates an empty MemoryCache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		tags:    make(map[string]map[string]struct{}),
	}
}

// Get returns the value for key and whether it was present
func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || entry.expired() {
		return "", false, nil
	}
	return entry.value, true, nil
}

// Set stores value under key with the given TTL
func (c *MemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value, ttl)
	return nil
}

func (c *MemoryCache) store(key, value string, ttl time.Duration) {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	c.entries[key] = memoryEntry{value: value, expiresAt: expiresAt}
}

// Forget removes key from the cache
func (c *MemoryCache) Forget(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Has reports whether key is present
func (c *MemoryCache) Has(ctx context.Context, key string) (bool, error) {
	_, found, _ := c.Get(ctx, key)
	return found, nil
}

// Flush removes everything
func (c *MemoryCache) Flush(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
	c.tags = make(map[string]map[string]struct{})
	return nil
}

// SetWithTags stores value under key and registers the key in every tag
func (c *MemoryCache) SetWithTags(_ context.Context, tags []string, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value, ttl)
	for _, tag := range tags {
		if c.tags[tag] == nil {
			c.tags[tag] = make(map[string]struct{})
		}
		c.tags[tag][key] = struct{}{}
	}
	return nil
}

// RememberWithTags returns the cached value for key, computing and
// storing it via fn on a miss
func (c *MemoryCache) RememberWithTags(ctx context.Context, tags []string, key string, ttl time.Duration, fn func() (string, error)) (string, error) {
	if value, found, _ := c.Get(ctx, key); found {
		return value, nil
	}

	value, err := fn()
	if err != nil {
		return "", err
	}
	if err := c.SetWithTags(ctx, tags, key, value, ttl); err != nil {
		return "", err
	}
	return value, nil
}

// FlushTags removes every key registered under the given tags
func (c *MemoryCache) FlushTags(_ context.Context, tags []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, tag := range tags {
		for key := range c.tags[tag] {
			delete(c.entries, key)
		}
		delete(c.tags, tag)
	}
	return nil
}
