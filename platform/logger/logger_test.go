package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{zap: zap.New(core)}

	ctx := WithContextFields(context.Background(), String("client_id", "c-1"))
	ctx = WithContextFields(ctx, String("request_id", "r-1"))

	l.Info(ctx, "hello", Int("n", 1))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "c-1", fields["client_id"])
	assert.Equal(t, "r-1", fields["request_id"])
	assert.EqualValues(t, 1, fields["n"])
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init("loud", true))
}
