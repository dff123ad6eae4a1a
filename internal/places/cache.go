package places

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]Place, bool, error)
	Set(ctx context.Context, key string, places []Place, ttl time.Duration) error
}

type RedisCache struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb, prefix: "conecta:places:"}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]Place, bool, error) {
	raw, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var places []Place
	if err := json.Unmarshal(raw, &places); err != nil {
		return nil, false, err
	}
	return places, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, places []Place, ttl time.Duration) error {
	raw, err := json.Marshal(places)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.prefix+key, raw, ttl).Err()
}

type memoryEntry struct {
	places  []Place
	expires time.Time
}

// MemoryCache is used when no Redis address is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]Place, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expires) {
		return nil, false, nil
	}
	return e.places, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, places []Place, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{places: places, expires: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}
