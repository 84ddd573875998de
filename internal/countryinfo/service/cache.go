package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"idscope_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Cache stores profiles by normalized country name. Implementations treat
// their own failures as misses.
type Cache interface {
	Get(ctx context.Context, key string) (*Profile, bool)
	Set(ctx context.Context, key string, profile *Profile, ttl time.Duration)
}

type cacheEntry struct {
	profile   *Profile
	expiresAt time.Time
}

// MemoryCache is a process-local TTL cache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewMemoryCache creates an empty process-local cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*Profile, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	p := *entry.profile
	return &p, true
}

func (c *MemoryCache) Set(_ context.Context, key string, profile *Profile, ttl time.Duration) {
	if profile == nil || ttl <= 0 {
		return
	}
	p := *profile
	c.mu.Lock()
	c.entries[key] = cacheEntry{profile: &p, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

const redisKeyPrefix = "idscope:country-profile:"

// RedisCache shares profiles between instances.
type RedisCache struct {
	rdb *redis.Client
	log *logger.Logger
}

// NewRedisCache parses redisURL and returns a cache backed by it.
func NewRedisCache(redisURL string, log *logger.Logger) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisCache{rdb: redis.NewClient(opt), log: log}, nil
}

// NewRedisCacheWithClient wraps an existing client.
func NewRedisCacheWithClient(rdb *redis.Client, log *logger.Logger) *RedisCache {
	return &RedisCache{rdb: rdb, log: log}
}

// Ping checks connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

func (c *RedisCache) Get(ctx context.Context, key string) (*Profile, bool) {
	raw, err := c.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("country profile cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Warn("country profile cache entry unreadable", "key", key, "error", err)
		return nil, false
	}
	return &p, true
}

func (c *RedisCache) Set(ctx context.Context, key string, profile *Profile, ttl time.Duration) {
	if profile == nil || ttl <= 0 {
		return
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		c.log.Warn("country profile cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, redisKeyPrefix+key, raw, ttl).Err(); err != nil {
		c.log.Warn("country profile cache write failed", "key", key, "error", err)
	}
}

var (
	_ Cache = (*MemoryCache)(nil)
	_ Cache = (*RedisCache)(nil)
)
