package blconsumer

import (
	"context"
	"fmt"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

type Converter interface {
	BatchListedFromPayload(data []byte) (*model.ProductBatch, error)
}

type Ingester interface {
	Ingest(ctx context.Context, batch *model.ProductBatch) (bool, error)
}

type batchListedConsumer struct {
	consumer kafka.Consumer
	conv     Converter
	catalog  Ingester
}

func NewBatchListedConsumer(
	consumer kafka.Consumer,
	conv Converter,
	catalog Ingester,
) *batchListedConsumer {
	return &batchListedConsumer{
		consumer: consumer,
		conv:     conv,
		catalog:  catalog,
	}
}

func (s *batchListedConsumer) RunBatchListedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting batch listed consumer")

	if err := s.consumer.Consume(ctx, s.batchListedHandler); err != nil {
		logger.Error(ctx, "Consume from catalog.batch_listed topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *batchListedConsumer) batchListedHandler(ctx context.Context, msg kafka.Message) error {
	batch, err := s.conv.BatchListedFromPayload(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode BatchListedRecord", logger.ErrorF(err))
		return fmt.Errorf("converter batch_listed_from_payload error: %w", err)
	}

	added, err := s.catalog.Ingest(ctx, batch)
	if err != nil {
		logger.Error(ctx, "Failed to ingest listed batch",
			logger.String("batch_id", batch.ID), logger.ErrorF(err))
		return err
	}
	if !added {
		logger.Debug(ctx, "batch already in catalog", logger.String("batch_id", batch.ID))
	}

	return nil
}
