package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka"
)

type Observer interface {
	ObserveMessage(topic string, err error, took time.Duration)
}

// Observe reports the outcome and handling time of every message.
func Observe(obs Observer) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			start := time.Now()
			err := next(ctx, msg)
			obs.ObserveMessage(msg.Topic, err, time.Since(start))
			return err
		}
	}
}

// OnlyEvent acknowledges messages of other event types without handling them.
// Records without the header are handled.
func OnlyEvent(eventType string, logger InfoLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			got := msg.Header(kafka.HeaderEventType)
			if got != "" && got != eventType {
				logger.Info(ctx, "Kafka msg skipped",
					zap.String("topic", msg.Topic),
					zap.String("event_type", got),
					zap.Int64("offset", msg.Offset),
				)
				return nil
			}
			return next(ctx, msg)
		}
	}
}
