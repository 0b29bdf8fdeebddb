package producer

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	logger       Logger
}

func NewProducer(syncProducer sarama.SyncProducer, topic string, logger Logger) *producer {
	return &producer{
		syncProducer: syncProducer,
		topic:        topic,
		logger:       logger,
	}
}

// Send publishes one record and waits for the broker ack. A cancelled ctx
// short-circuits before anything is written.
func (p *producer) Send(ctx context.Context, key, value []byte, headers ...kafka.Header) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.ByteEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: toRecordHeaders(headers),
	}

	partition, offset, err := p.syncProducer.SendMessage(msg)
	if err != nil {
		p.logger.Error(ctx, "Failed to send message",
			zap.String("topic", p.topic),
			zap.String("key", string(key)),
			zap.Error(err),
		)
		return err
	}

	p.logger.Info(ctx, "Message sent",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.String("key", string(key)),
		zap.Int("bytes", len(value)),
		zap.Int("headers", len(headers)),
	)

	return nil
}

func toRecordHeaders(headers []kafka.Header) []sarama.RecordHeader {
	if len(headers) == 0 {
		return nil
	}

	out := make([]sarama.RecordHeader, 0, len(headers))
	for _, h := range headers {
		out = append(out, sarama.RecordHeader{Key: []byte(h.Key), Value: []byte(h.Value)})
	}
	return out
}
