package blconsumer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/converter"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka"
)

type stubConsumer struct {
	messages []kafka.Message
	errs     []error
}

func (c *stubConsumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	for _, m := range c.messages {
		c.errs = append(c.errs, handler(ctx, m))
	}
	return nil
}

type stubCatalog struct {
	seen map[string]bool
	err  error
}

func (c *stubCatalog) Ingest(_ context.Context, b *model.ProductBatch) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	if c.seen[b.ID] {
		return false, nil
	}
	c.seen[b.ID] = true
	return true, nil
}

func TestRunBatchListedConsume(t *testing.T) {
	t.Parallel()

	conv := converter.NewKafkaConverter()
	payload, err := conv.BatchListedToPayload(&model.ProductBatch{
		ID:     "batch_1",
		Status: model.BatchStatusAvailable,
	})
	require.NoError(t, err)

	t.Run("ingests and tolerates redelivery", func(t *testing.T) {
		t.Parallel()

		cons := &stubConsumer{messages: []kafka.Message{{Value: payload}, {Value: payload}}}
		cat := &stubCatalog{seen: map[string]bool{}}

		require.NoError(t, NewBatchListedConsumer(cons, conv, cat).RunBatchListedConsume(context.Background()))
		assert.Equal(t, []error{nil, nil}, cons.errs)
		assert.True(t, cat.seen["batch_1"])
	})

	t.Run("undecodable payload is reported", func(t *testing.T) {
		t.Parallel()

		cons := &stubConsumer{messages: []kafka.Message{{Value: []byte("{")}, {Value: []byte(`{"title":"x"}`)}}}
		cat := &stubCatalog{seen: map[string]bool{}}

		require.NoError(t, NewBatchListedConsumer(cons, conv, cat).RunBatchListedConsume(context.Background()))
		require.Len(t, cons.errs, 2)
		assert.Error(t, cons.errs[0])
		assert.ErrorIs(t, cons.errs[1], model.ErrValidation)
		assert.Empty(t, cat.seen)
	})

	t.Run("ingest failure is reported", func(t *testing.T) {
		t.Parallel()

		ingestErr := errors.New("mongo down")
		cons := &stubConsumer{messages: []kafka.Message{{Value: payload}}}

		require.NoError(t, NewBatchListedConsumer(cons, conv, &stubCatalog{err: ingestErr}).RunBatchListedConsume(context.Background()))
		assert.ErrorIs(t, cons.errs[0], ingestErr)
	})
}
