package service

import (
	"context"
	"encoding/json"
	"errors"

	"foodfinder/agg-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads search events until ctx is done. Malformed messages and store
// failures are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	logrus.Info("starting aggregation consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				logrus.Info("aggregation consumer stopped")
				return
			}
			logrus.WithError(err).Warn("error reading message")
			continue
		}

		var event domain.SearchEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			logrus.WithError(err).WithField("offset", message.Offset).Warn("error unmarshaling message")
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.SearchEvent) {
	log := logrus.WithFields(logrus.Fields{"type": event.Type, "dish": event.Dish})

	switch event.Type {
	case domain.EventSearchCompleted:
		if err := c.Store.RecordSearch(ctx, event); err != nil {
			log.WithError(err).Error("error recording search stats")
			return
		}
		if err := c.Store.UpdateAnalytics(ctx, event); err != nil {
			log.WithError(err).Error("error updating analytics")
			return
		}
		log.WithFields(logrus.Fields{"source": event.Source, "degraded": event.ProviderFailed}).Debug("search aggregated")

	case domain.EventRestaurantDiscovered:
		if err := c.Store.RecordDiscovery(ctx, event); err != nil {
			log.WithError(err).Error("error recording discovery")
			return
		}
		log.WithField("restaurant", event.RestaurantName).Debug("discovery aggregated")

	default:
		log.Debug("ignoring unknown event type")
	}
}
