package blproducer

import (
	"context"
	"fmt"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

type Converter interface {
	BatchListedToPayload(b *model.ProductBatch) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewBatchListedProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendBatchListed(ctx context.Context, batch *model.ProductBatch) error {
	payload, err := s.conv.BatchListedToPayload(batch)
	if err != nil {
		return fmt.Errorf("converter batch_listed_to_payload error: %w", err)
	}

	err = s.producer.Send(ctx, []byte(batch.ID), payload,
		kafka.Header{Key: kafka.HeaderEventType, Value: model.EventBatchListed},
		kafka.Header{Key: "content-type", Value: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("producer to catalog.batch_listed topic error: %w", err)
	}

	return nil
}

type noop struct{}

// NewNoopProducer is used when Kafka is disabled.
func NewNoopProducer() *noop { return &noop{} }

func (noop) SendBatchListed(ctx context.Context, batch *model.ProductBatch) error {
	logger.Debug(ctx, "kafka disabled, batch listed event dropped", logger.String("batch_id", batch.ID))
	return nil
}
