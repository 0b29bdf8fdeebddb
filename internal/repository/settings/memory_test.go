package repository

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

func TestMemoryRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()
	client := gofakeit.UUID()

	_, err := repo.Get(ctx, client, "theme")
	assert.ErrorIs(t, err, model.ErrSettingNotFound)

	value := []byte(`"light"`)
	require.NoError(t, repo.Set(ctx, client, "theme", value))
	value[1] = 'X'

	got, err := repo.Get(ctx, client, "theme")
	require.NoError(t, err)
	assert.Equal(t, `"light"`, string(got))

	_, err = repo.Get(ctx, gofakeit.UUID(), "theme")
	assert.ErrorIs(t, err, model.ErrSettingNotFound)

	require.NoError(t, repo.Set(ctx, client, "theme", []byte(`"dark"`)))
	got, err = repo.Get(ctx, client, "theme")
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, string(got))
}
