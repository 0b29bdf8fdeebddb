package consumer

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka"
)

const (
	defaultMaxFailures = 5
	defaultRetryDelay  = time.Second
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type consumer struct {
	group       sarama.ConsumerGroup
	topics      []string
	logger      Logger
	middlewares []kafka.Middleware

	maxFailures int
	retryDelay  time.Duration
}

func NewConsumer(group sarama.ConsumerGroup, topics []string, logger Logger, middlewares ...kafka.Middleware) *consumer {
	return &consumer{
		group:       group,
		topics:      topics,
		logger:      logger,
		middlewares: middlewares,
		maxFailures: defaultMaxFailures,
		retryDelay:  defaultRetryDelay,
	}
}

// WithRetry sets how many consecutive session failures are tolerated and the
// pause between them.
func (c *consumer) WithRetry(maxFailures int, delay time.Duration) *consumer {
	c.maxFailures = maxFailures
	c.retryDelay = delay
	return c
}

// Consume blocks until ctx is done or the group is closed. A failed session is
// retried; the error is returned after maxFailures failures in a row.
func (c *consumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	gh := NewGroupHandler(handler, c.logger, c.middlewares...)

	failures := 0
	for {
		err := c.group.Consume(ctx, c.topics, gh)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			return nil
		case err != nil:
			failures++
			c.logger.Error(ctx, "Kafka consume error",
				zap.Strings("topics", c.topics),
				zap.Int("failures", failures),
				zap.Error(err),
			)
			if failures >= c.maxFailures {
				return errors.Wrap(err, "consume")
			}
		default:
			failures = 0
		}

		if ctx.Err() != nil {
			return nil
		}

		if failures > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.retryDelay):
			}
			continue
		}

		c.logger.Info(ctx, "Kafka consumer group rebalancing...")
	}
}
