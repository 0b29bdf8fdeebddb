package middleware

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka"
)

type ErrorLogger interface {
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

// Recovery turns a handler panic into an error so the message is not marked.
func Recovery(logger ErrorLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error(ctx, "Recovered from panic in message processing",
						zap.String("topic", msg.Topic),
						zap.Any("panic", r),
					)
					err = errors.Errorf("panic in handler: %v", r)
				}
			}()
			return next(ctx, msg)
		}
	}
}
