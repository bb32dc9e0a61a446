package provider

import (
	"context"

	"foodfinder/search-svc/internal/domain"
	"foodfinder/search-svc/internal/geo"

	"github.com/sirupsen/logrus"
)

type Searcher interface {
	Search(ctx context.Context, dish string, center domain.Coordinates, radiusMeters int) ([]domain.Restaurant, error)
}

type ResponseCache interface {
	GetCandidates(ctx context.Context, key string) ([]domain.Restaurant, bool, error)
	SetCandidates(ctx context.Context, key string, candidates []domain.Restaurant) error
}

// CachedSearcher serves repeated provider queries from a short lived cache.
// Failed queries are never cached.
type CachedSearcher struct {
	next  Searcher
	cache ResponseCache
}

func NewCachedSearcher(next Searcher, cache ResponseCache) *CachedSearcher {
	return &CachedSearcher{next: next, cache: cache}
}

func (s *CachedSearcher) Search(ctx context.Context, dish string, center domain.Coordinates, radiusMeters int) ([]domain.Restaurant, error) {
	key := CacheKey(dish, center, radiusMeters)

	cached, ok, err := s.cache.GetCandidates(ctx, key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("provider cache read failed")
	} else if ok {
		for i := range cached {
			cached[i].DistanceKm = geo.Distance(center, cached[i].Location)
		}
		return cached, nil
	}

	candidates, err := s.next.Search(ctx, dish, center, radiusMeters)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCandidates(ctx, key, candidates); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("provider cache write failed")
	}

	return candidates, nil
}

var (
	_ Searcher = (*YandexClient)(nil)
	_ Searcher = (*CachedSearcher)(nil)
)
