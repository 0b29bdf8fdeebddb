package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

func TestClientWithoutAPIKeyIsUnavailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, err := NewClient(ctx, Options{}, nil)
	require.NoError(t, err)
	assert.False(t, c.Available())

	_, err = c.Interpret(ctx, "wool from peru")
	assert.ErrorIs(t, err, model.ErrAIUnavailable)

	_, err = c.AnalyzeImage(ctx, model.ListingImage{Data: []byte{1}, MIMEType: "image/png"})
	assert.ErrorIs(t, err, model.ErrAIUnavailable)

	_, err = c.SuggestListing(ctx, model.ListingSuggestionRequest{Title: "t", Description: "d"})
	assert.ErrorIs(t, err, model.ErrAIUnavailable)

	_, err = c.SendChat(ctx, "client", "hi")
	assert.ErrorIs(t, err, model.ErrAIUnavailable)
	assert.Zero(t, c.EvictChats(0))
}

func TestUpstreamKeepsContextErrors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, upstream(context.DeadlineExceeded), context.DeadlineExceeded)
	assert.NotErrorIs(t, upstream(context.DeadlineExceeded), model.ErrBadGateway)
	assert.ErrorIs(t, upstream(errors.New("500")), model.ErrBadGateway)
}
