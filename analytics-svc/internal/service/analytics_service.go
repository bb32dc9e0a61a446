package service

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"foodfinder/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Keys written by agg-svc.
const (
	dailyDishesKeyPrefix = "analytics:daily:"
	allTimeDishesKey     = "analytics:alltime"
	sourcesKeyPrefix     = "analytics:sources:"
	discoveredKeyPrefix  = "analytics:discovered:"

	topLimit   = 10
	dateLayout = "2006-01-02"
)

type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

// WithClock replaces the clock used to pick "today".
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

func (s *AnalyticsService) today() string {
	return s.now().UTC().Format(dateLayout)
}

func (s *AnalyticsService) TopToday(ctx context.Context) ([]domain.DishScore, error) {
	today := s.today()
	if scores := s.topFromRedis(ctx, dailyDishesKeyPrefix+today); len(scores) > 0 {
		return scores, nil
	}

	return s.queryScores(ctx, `
		SELECT dish, searches
		FROM search_stats
		WHERE day = $1 AND searches > 0
		ORDER BY searches DESC, dish
		LIMIT $2
	`, today, topLimit)
}

func (s *AnalyticsService) TopAllTime(ctx context.Context) ([]domain.DishScore, error) {
	if scores := s.topFromRedis(ctx, allTimeDishesKey); len(scores) > 0 {
		return scores, nil
	}

	return s.queryScores(ctx, `
		SELECT dish, SUM(searches) AS total
		FROM search_stats
		GROUP BY dish
		HAVING SUM(searches) > 0
		ORDER BY total DESC, dish
		LIMIT $1
	`, topLimit)
}

func (s *AnalyticsService) topFromRedis(ctx context.Context, key string) []domain.DishScore {
	result, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, topLimit-1).Result()
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("redis leaderboard unavailable, falling back to database")
		return nil
	}

	scores := make([]domain.DishScore, 0, len(result))
	for _, member := range result {
		dish, ok := member.Member.(string)
		if !ok {
			continue
		}
		scores = append(scores, domain.DishScore{Dish: dish, Searches: member.Score})
	}
	return scores
}

func (s *AnalyticsService) queryScores(ctx context.Context, query string, args ...interface{}) ([]domain.DishScore, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := []domain.DishScore{}
	for rows.Next() {
		var score domain.DishScore
		if err := rows.Scan(&score.Dish, &score.Searches); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

// SourceBreakdown reports how the searches of date were served. An empty date
// means today.
func (s *AnalyticsService) SourceBreakdown(ctx context.Context, date string) (domain.SourceBreakdown, error) {
	if date == "" {
		date = s.today()
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return domain.SourceBreakdown{}, domain.ErrInvalidDate
	}

	breakdown := domain.SourceBreakdown{Date: date}

	sources, err := s.rdb.HGetAll(ctx, sourcesKeyPrefix+date).Result()
	if err == nil && len(sources) > 0 {
		breakdown.LocalDatabase = atoi(sources[domain.ProvenanceLocal])
		breakdown.Hybrid = atoi(sources[domain.ProvenanceHybrid])
		breakdown.Degraded = atoi(sources["degraded"])
		breakdown.WriteBackFailures = atoi(sources["write_back_failures"])

		discovered, err := s.rdb.HVals(ctx, discoveredKeyPrefix+date).Result()
		if err == nil {
			for _, count := range discovered {
				breakdown.Discovered += atoi(count)
			}
		}
		return breakdown, nil
	}
	if err != nil {
		logrus.WithError(err).WithField("date", date).Warn("redis source breakdown unavailable, falling back to database")
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(local_only), 0), COALESCE(SUM(hybrid), 0), COALESCE(SUM(degraded), 0),
			COALESCE(SUM(write_back_failures), 0), COALESCE(SUM(discovered), 0)
		FROM search_stats
		WHERE day = $1
	`, date).Scan(&breakdown.LocalDatabase, &breakdown.Hybrid, &breakdown.Degraded, &breakdown.WriteBackFailures, &breakdown.Discovered)
	return breakdown, err
}

// DishCoverage counts the stored restaurants linked to dish next to how often
// the dish was searched.
func (s *AnalyticsService) DishCoverage(ctx context.Context, dish string) (domain.DishCoverage, error) {
	coverage := domain.DishCoverage{Dish: strings.ToLower(strings.TrimSpace(dish))}

	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT restaurant_id), COALESCE(AVG(confidence_score), 0)
		FROM restaurant_dishes
		WHERE LOWER(dish_name) = $1
	`, coverage.Dish).Scan(&coverage.Restaurants, &coverage.AvgConfidence); err != nil {
		return domain.DishCoverage{}, err
	}

	if err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(searches), 0), COALESCE(SUM(discovered), 0)
		FROM search_stats
		WHERE dish = $1
	`, coverage.Dish).Scan(&coverage.Searches, &coverage.Discovered); err != nil {
		return domain.DishCoverage{}, err
	}

	return coverage, nil
}

func atoi(value string) int {
	n, _ := strconv.Atoi(value)
	return n
}
