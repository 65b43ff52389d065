package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"blood-donor-registry/internal/domain/entity"
	"blood-donor-registry/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	directoryKeyPrefix  = "donors:directory:"
	directoryVersionKey = directoryKeyPrefix + "version"
)

// redisDirectoryCache stores listings under a generation number.
// Invalidate bumps the generation, so every listing written before it
// becomes unreachable at once and expires by TTL.
type redisDirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDirectoryCache(client *redis.Client, ttl time.Duration) repository.DirectoryCache {
	return &redisDirectoryCache{client: client, ttl: ttl}
}

func (c *redisDirectoryCache) Get(ctx context.Context, filter entity.DonorFilter) ([]entity.Donor, int64, bool, error) {
	generation, err := c.client.Get(ctx, directoryVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, err
	}

	raw, err := c.client.Get(ctx, listingKey(generation, filter)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, generation, false, nil
	}
	if err != nil {
		return nil, 0, false, err
	}

	var donors []entity.Donor
	if err := json.Unmarshal(raw, &donors); err != nil {
		return nil, 0, false, fmt.Errorf("failed to decode cached directory: %w", err)
	}
	return donors, generation, true, nil
}

// Set stores donors under the generation the caller read before loading
// them. If Invalidate ran in between, the entry lands in a retired
// generation and only waits out its TTL.
func (c *redisDirectoryCache) Set(ctx context.Context, filter entity.DonorFilter, generation int64, donors []entity.Donor) error {
	raw, err := json.Marshal(donors)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listingKey(generation, filter), raw, c.ttl).Err()
}

func (c *redisDirectoryCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, directoryVersionKey).Err()
}

func listingKey(generation int64, filter entity.DonorFilter) string {
	return fmt.Sprintf("%sv%d:%s", directoryKeyPrefix, generation, filter.Key())
}

// noopDirectoryCache is used when Redis is disabled; every read misses.
type noopDirectoryCache struct{}

func NewNoopDirectoryCache() repository.DirectoryCache {
	return noopDirectoryCache{}
}

func (noopDirectoryCache) Get(context.Context, entity.DonorFilter) ([]entity.Donor, int64, bool, error) {
	return nil, 0, false, nil
}

func (noopDirectoryCache) Set(context.Context, entity.DonorFilter, int64, []entity.Donor) error {
	return nil
}

func (noopDirectoryCache) Invalidate(context.Context) error {
	return nil
}
