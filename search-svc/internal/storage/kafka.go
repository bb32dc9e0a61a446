package storage

import (
	"context"
	"encoding/json"
	"strings"

	"foodfinder/search-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// Publish writes the event keyed by dish so all events for a dish land on one partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.SearchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strings.ToLower(strings.TrimSpace(event.Dish))),
		Value: payload,
	})
}
