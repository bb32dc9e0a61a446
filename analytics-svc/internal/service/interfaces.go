package service

import (
	"context"

	"foodfinder/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	TopToday(ctx context.Context) ([]domain.DishScore, error)
	TopAllTime(ctx context.Context) ([]domain.DishScore, error)
	SourceBreakdown(ctx context.Context, date string) (domain.SourceBreakdown, error)
	DishCoverage(ctx context.Context, dish string) (domain.DishCoverage, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
