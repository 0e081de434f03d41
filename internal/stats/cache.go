package stats

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const overviewKey = "stats:overview"

// Cache wraps Redis based caching of the overview aggregate.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached overview, reporting a miss when absent.
func (c *Cache) Get(ctx context.Context) (*Overview, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	data, err := c.client.Get(ctx, overviewKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var overview Overview
	if err := json.Unmarshal(data, &overview); err != nil {
		return nil, false, err
	}
	return &overview, true, nil
}

// Set stores the overview with the configured TTL.
func (c *Cache) Set(ctx context.Context, overview *Overview) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(overview)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, overviewKey, data, c.ttl).Err()
}
