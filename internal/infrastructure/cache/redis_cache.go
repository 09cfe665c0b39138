package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCache implements the application cache port on Redis. Redis has no
// native tagging, so each tag is a set holding the keys stored under it;
// flushing a tag deletes the members of that set plus the set itself.
type RedisCache struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisCache creates a new RedisCache. All keys are namespaced with
// the given prefix.
func NewRedisCache(client *redis.Client, prefix string, logger *zap.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

func (c *RedisCache) tagKey(tag string) string {
	return fmt.Sprintf("%stag:%s", c.prefix, tag)
}

// Get returns the value for key and whether it was present
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, c.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key with the given TTL
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Forget removes key from the cache
func (c *RedisCache) Forget(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("cache forget %s: %w", key, err)
	}
	return nil
}

// Has reports whether key is present
func (c *RedisCache) Has(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("cache has %s: %w", key, err)
	}
	return n > 0, nil
}

// Flush removes every key under this cache's prefix
func (c *RedisCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache flush: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache flush scan: %w", err)
	}
	return nil
}

// SetWithTags stores value under key and registers the key in every tag set
func (c *RedisCache) SetWithTags(ctx context.Context, tags []string, key, value string, ttl time.Duration) error {
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, c.key(key), value, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, c.tagKey(tag), c.key(key))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set with tags %s: %w", key, err)
	}
	return nil
}

// RememberWithTags returns the cached value for key, computing and
// storing it via fn on a miss. Cache failures degrade to computing the
// value directly so reads never fail on a broken cache.
func (c *RedisCache) RememberWithTags(ctx context.Context, tags []string, key string, ttl time.Duration, fn func() (string, error)) (string, error) {
	value, found, err := c.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Cache read failed, computing value", zap.String("key", key), zap.Error(err))
	}
	if found {
		return value, nil
	}

	value, err = fn()
	if err != nil {
		return "", err
	}

	if err := c.SetWithTags(ctx, tags, key, value, ttl); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}

// FlushTags removes every key registered under the given tags
func (c *RedisCache) FlushTags(ctx context.Context, tags []string) error {
	for _, tag := range tags {
		tagKey := c.tagKey(tag)
		members, err := c.client.SMembers(ctx, tagKey).Result()
		if err != nil {
			return fmt.Errorf("cache flush tag %s: %w", tag, err)
		}
		if len(members) > 0 {
			if err := c.client.Del(ctx, members...).Err(); err != nil {
				return fmt.Errorf("cache flush tag %s members: %w", tag, err)
			}
		}
		if err := c.client.Del(ctx, tagKey).Err(); err != nil {
			return fmt.Errorf("cache flush tag %s set: %w", tag, err)
		}
	}
	return nil
}
