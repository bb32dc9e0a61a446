package storage

import (
	"context"
	"database/sql"
	"embed"
	"strings"
	"time"

	"foodfinder/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

//go:embed migrations/*.sql
var Migrations embed.FS

const (
	MigrationsTable = "schema_migrations_agg"

	dailyTTL = 8 * 24 * time.Hour
)

// Redis layout shared with analytics-svc.
const (
	DailyDishesKeyPrefix = "analytics:daily:"
	AllTimeDishesKey     = "analytics:alltime"
	SourcesKeyPrefix     = "analytics:sources:"
	DiscoveredKeyPrefix  = "analytics:discovered:"

	FieldDegraded          = "degraded"
	FieldWriteBackFailures = "write_back_failures"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

// RecordSearch folds one completed search into the per-day row for its dish.
func (s *Store) RecordSearch(ctx context.Context, event domain.SearchEvent) error {
	localOnly, hybrid, degraded := 0, 0, 0
	if event.Source == domain.ProvenanceLocal {
		localOnly = 1
	} else {
		hybrid = 1
	}
	if event.ProviderFailed {
		degraded = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO search_stats (day, dish, searches, local_only, hybrid, degraded, write_back_failures, updated_at)
		VALUES ($1, $2, 1, $3, $4, $5, $6, NOW())
		ON CONFLICT (day, dish) DO UPDATE SET
			searches = search_stats.searches + 1,
			local_only = search_stats.local_only + EXCLUDED.local_only,
			hybrid = search_stats.hybrid + EXCLUDED.hybrid,
			degraded = search_stats.degraded + EXCLUDED.degraded,
			write_back_failures = search_stats.write_back_failures + EXCLUDED.write_back_failures,
			updated_at = NOW()
	`, event.Day(s.now()), normalizeDish(event.Dish), localOnly, hybrid, degraded, event.WriteBackFailures)
	return err
}

// UpdateAnalytics bumps the Redis leaderboards and the per-day source breakdown.
func (s *Store) UpdateAnalytics(ctx context.Context, event domain.SearchEvent) error {
	day := event.Day(s.now())
	dish := normalizeDish(event.Dish)
	dailyKey := DailyDishesKeyPrefix + day
	sourcesKey := SourcesKeyPrefix + day

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, dailyKey, 1, dish)
		pipe.Expire(ctx, dailyKey, dailyTTL)
		pipe.ZIncrBy(ctx, AllTimeDishesKey, 1, dish)

		if event.Source != "" {
			pipe.HIncrBy(ctx, sourcesKey, event.Source, 1)
		}
		if event.ProviderFailed {
			pipe.HIncrBy(ctx, sourcesKey, FieldDegraded, 1)
		}
		if event.WriteBackFailures > 0 {
			pipe.HIncrBy(ctx, sourcesKey, FieldWriteBackFailures, int64(event.WriteBackFailures))
		}
		pipe.Expire(ctx, sourcesKey, dailyTTL)
		return nil
	})
	return err
}

// RecordDiscovery counts a restaurant that search-svc learned from the provider.
func (s *Store) RecordDiscovery(ctx context.Context, event domain.SearchEvent) error {
	day := event.Day(s.now())
	dish := normalizeDish(event.Dish)

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO search_stats (day, dish, discovered, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (day, dish) DO UPDATE SET
			discovered = search_stats.discovered + 1,
			updated_at = NOW()
	`, day, dish); err != nil {
		return err
	}

	key := DiscoveredKeyPrefix + day
	if err := s.rdb.HIncrBy(ctx, key, dish, 1).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, dailyTTL).Err()
}

func normalizeDish(dish string) string {
	return strings.ToLower(strings.TrimSpace(dish))
}
