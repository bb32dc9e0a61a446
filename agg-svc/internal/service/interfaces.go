package service

import (
	"context"

	"foodfinder/agg-svc/internal/domain"
	"foodfinder/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordSearch(ctx context.Context, event domain.SearchEvent) error
	UpdateAnalytics(ctx context.Context, event domain.SearchEvent) error
	RecordDiscovery(ctx context.Context, event domain.SearchEvent) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.SearchEvent)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
