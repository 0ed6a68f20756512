package companyregistry

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const lookupKeyPrefix = "registry:company:"

// RedisCache caches register lookups so repeated onboarding attempts for
// the same company number do not hammer the public API. Only register
// data is cached; the directory duplicate check always runs fresh.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached lookup for a company number, or (nil, nil) on a
// cache miss. Cache errors degrade to a miss.
func (c *RedisCache) Get(ctx context.Context, companyNumber string) (*LookupResult, error) {
	raw, err := c.client.Get(ctx, lookupKeyPrefix+companyNumber).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result LookupResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the
		// next successful lookup.
		return nil, nil
	}
	return &result, nil
}

// Set stores a lookup result under the company number with the cache TTL.
func (c *RedisCache) Set(ctx context.Context, companyNumber string, result LookupResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, lookupKeyPrefix+companyNumber, raw, c.ttl).Err()
}
