package closer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAllReverseOrder(t *testing.T) {
	t.Parallel()

	c := New()
	var order []string
	c.AddNamed("first", func(context.Context) error { order = append(order, "first"); return nil })
	c.AddNamed("second", func(context.Context) error { order = append(order, "second"); return nil })

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestCloseAllJoinsErrorsAndRecovers(t *testing.T) {
	t.Parallel()

	c := New()
	boom := errors.New("boom")
	called := false
	c.AddNamed("ok", func(context.Context) error { called = true; return nil })
	c.AddNamed("fails", func(context.Context) error { return boom })
	c.AddNamed("panics", func(context.Context) error { panic("oops") })

	err := c.CloseAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "panics")
	assert.True(t, called)

	assert.NoError(t, c.CloseAll(context.Background()), "second call is a no-op")
}
