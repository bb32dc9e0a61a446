package storage_test

import (
	"context"
	"testing"
	"time"

	"foodfinder/search-svc/internal/domain"
	"foodfinder/search-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*storage.RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisCache(client, ttl), mr
}

func TestRedisCache_RoundTrip(t *testing.T) {
	cache, mr := newRedisCache(t, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.GetCandidates(ctx, "provider:суши:55.7558:37.6173:5000")
	require.NoError(t, err)
	assert.False(t, ok)

	candidates := []domain.Restaurant{
		{ExternalID: "1001", Name: "Суши Мастер", Location: domain.Coordinates{Lat: 55.76, Lon: 37.62}, Source: domain.SourceYandex},
	}
	require.NoError(t, cache.SetCandidates(ctx, "provider:суши:55.7558:37.6173:5000", candidates))
	assert.Equal(t, time.Minute, mr.TTL("provider:суши:55.7558:37.6173:5000"))

	got, ok, err := cache.GetCandidates(ctx, "provider:суши:55.7558:37.6173:5000")
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "1001", got[0].ExternalID)
	assert.Equal(t, domain.Coordinates{Lat: 55.76, Lon: 37.62}, got[0].Location)

	mr.FastForward(2 * time.Minute)
	_, ok, err = cache.GetCandidates(ctx, "provider:суши:55.7558:37.6173:5000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_EmptyResultIsCached(t *testing.T) {
	cache, _ := newRedisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetCandidates(ctx, "k", nil))

	got, ok, err := cache.GetCandidates(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestRedisCache_ZeroTTLDisablesWrites(t *testing.T) {
	cache, mr := newRedisCache(t, 0)

	require.NoError(t, cache.SetCandidates(context.Background(), "k", []domain.Restaurant{{Name: "x"}}))
	assert.False(t, mr.Exists("k"))
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	cache, mr := newRedisCache(t, time.Minute)
	require.NoError(t, mr.Set("k", "not json"))

	_, ok, err := cache.GetCandidates(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}
