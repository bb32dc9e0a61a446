package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"foodfinder/search-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) GetCandidates(ctx context.Context, key string) ([]domain.Restaurant, bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var candidates []domain.Restaurant
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, false, err
	}
	return candidates, true, nil
}

func (c *RedisCache) SetCandidates(ctx context.Context, key string, candidates []domain.Restaurant) error {
	if c.TTL <= 0 {
		return nil
	}
	if candidates == nil {
		candidates = []domain.Restaurant{}
	}

	payload, err := json.Marshal(candidates)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}
