package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}

// scriptedGroup returns the scripted errors from Consume in order, then
// ErrClosedConsumerGroup.
type scriptedGroup struct {
	sarama.ConsumerGroup
	errs  []error
	calls int
}

func (g *scriptedGroup) Consume(context.Context, []string, sarama.ConsumerGroupHandler) error {
	g.calls++
	if len(g.errs) == 0 {
		return sarama.ErrClosedConsumerGroup
	}
	err := g.errs[0]
	g.errs = g.errs[1:]
	return err
}

func noopHandler(context.Context, kafka.Message) error { return nil }

func TestConsume(t *testing.T) {
	t.Parallel()

	boom := errors.New("broker down")

	tests := []struct {
		name    string
		errs    []error
		wantErr bool
		calls   int
	}{
		{name: "closed group stops cleanly", errs: nil, calls: 1},
		{name: "rebalance loops", errs: []error{nil, nil}, calls: 3},
		{name: "transient failure is retried", errs: []error{boom, nil, boom}, calls: 4},
		{name: "gives up after consecutive failures", errs: []error{boom, boom, boom}, wantErr: true, calls: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			group := &scriptedGroup{errs: tt.errs}
			c := NewConsumer(group, []string{"catalog.batch_listed"}, nopLogger{}).WithRetry(3, time.Millisecond)

			err := c.Consume(context.Background(), noopHandler)
			if tt.wantErr {
				assert.ErrorIs(t, err, boom)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.calls, group.calls)
		})
	}
}

func TestConsumeStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	group := &scriptedGroup{errs: []error{nil, nil, nil}}
	err := NewConsumer(group, nil, nopLogger{}).Consume(ctx, noopHandler)

	assert.NoError(t, err)
	assert.Equal(t, 1, group.calls)
}
