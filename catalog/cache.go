package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/evergreenlots/treestore-api/models"
	"github.com/redis/go-redis/v9"
)

const cacheKey = "catalog:normalized"

// ErrCacheMiss is returned when no catalog is cached.
var ErrCacheMiss = errors.New("catalog cache miss")

// Cache stores the normalized catalog in redis with a TTL so repeat
// storefront loads skip the vendor round trip. A nil client disables
// caching; Get then always misses.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, ttl: 5 * time.Minute}
}

func (c *Cache) Get(ctx context.Context) (*models.Catalog, error) {
	if c == nil || c.client == nil {
		return nil, ErrCacheMiss
	}

	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cat models.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("unmarshal catalog failed: %w", err)
	}
	return &cat, nil
}

func (c *Cache) Set(ctx context.Context, cat *models.Catalog) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("marshal catalog failed: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *Cache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
