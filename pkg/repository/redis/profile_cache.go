package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"careerpath/pkg/career"
)

const profileKeyPrefix = "career:profiles:"

// ProfileCache keeps aggregated career profiles in Redis, keyed by the
// dataset fingerprint. A changed dataset produces a new key, so stale
// entries simply age out via TTL.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: client, ttl: ttl}
}

func (c *ProfileCache) Get(ctx context.Context, fingerprint string) (map[string]career.Profile, error) {
	data, err := c.client.Get(ctx, profileKeyPrefix+fingerprint).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var profiles map[string]career.Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		// A corrupt entry is treated as a miss; the caller rebuilds and overwrites it.
		return nil, nil
	}
	return profiles, nil
}

func (c *ProfileCache) Put(ctx context.Context, fingerprint string, profiles map[string]career.Profile) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, profileKeyPrefix+fingerprint, data, c.ttl).Err()
}
