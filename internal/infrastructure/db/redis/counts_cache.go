package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ratewise/store-ratings/internal/core/ports"
)

const (
	countsKey = "dashboard:counts"
	countsTTL = 30 * time.Second
)

// CountsCache caches the admin dashboard counts in Redis with a short TTL.
// Only plain row counts are cached here; rating averages are always computed
// live from the ledger.
type CountsCache struct {
	client *redis.Client
}

// NewCountsCache creates a CountsCache wrapping the given Redis client.
func NewCountsCache(client *redis.Client) *CountsCache {
	return &CountsCache{client: client}
}

// Get returns the cached counts, or (nil, nil) on a miss.
func (c *CountsCache) Get(ctx context.Context) (*ports.DashboardCounts, error) {
	raw, err := c.client.Get(ctx, countsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("counts cache get: %w", err)
	}

	var counts ports.DashboardCounts
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil, fmt.Errorf("counts cache decode: %w", err)
	}
	return &counts, nil
}

// Set stores the counts (expires after countsTTL).
func (c *CountsCache) Set(ctx context.Context, counts *ports.DashboardCounts) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("counts cache encode: %w", err)
	}
	return c.client.Set(ctx, countsKey, raw, countsTTL).Err()
}
