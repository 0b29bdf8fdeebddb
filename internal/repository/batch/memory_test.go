package repository

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

func TestMemoryRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("keeps insertion order and rejects duplicates", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepository()
		first := &model.ProductBatch{ID: gofakeit.UUID(), Title: gofakeit.ProductName()}
		second := &model.ProductBatch{ID: gofakeit.UUID(), Title: gofakeit.ProductName()}

		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))
		assert.ErrorIs(t, repo.Create(ctx, first), model.ErrBatchAlreadyExists)
		assert.False(t, first.ListedAt.IsZero())

		got, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []*model.ProductBatch{first, second}, got)
	})

	t.Run("empty id is a validation error", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, NewMemoryRepository().Create(ctx, &model.ProductBatch{}), model.ErrValidation)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepository()
		require.NoError(t, repo.Create(ctx, &model.ProductBatch{ID: "a"}))

		got, err := repo.List(ctx)
		require.NoError(t, err)
		got[0] = nil

		again, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, again[0])
	})
}

func TestBatchesBootstrap(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	require.NoError(t, BatchesBootstrap(context.Background(), repo))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, got)

	countries := lo.Uniq(lo.Map(got, func(b *model.ProductBatch, _ int) string { return b.Country }))
	assert.ElementsMatch(t, []string{"Kenya", "Peru", "Vietnam", "Guatemala", "India", "Morocco"}, countries)

	for i, b := range got {
		assert.NotEmpty(t, b.ID)
		assert.True(t, b.Status.Valid(), b.ID)
		assert.GreaterOrEqual(t, b.UnitPriceUSD, 0.0)
		assert.GreaterOrEqual(t, b.MOQ, int64(0))
		if i > 0 {
			assert.False(t, b.ListedAt.Before(got[i-1].ListedAt), "seed is listed oldest first")
		}
	}
}

func TestEntityConversion(t *testing.T) {
	t.Parallel()

	b := &model.ProductBatch{
		ID:             "batch_1",
		Title:          "Rug",
		Country:        "Morocco",
		UnitPriceUSD:   420,
		MOQ:            5,
		Status:         model.BatchStatusAvailable,
		MLQualityScore: lo.ToPtr(model.QualityA),
		Specs:          map[string]string{"Pile": "2.5 cm"},
	}

	assert.Equal(t, b, EntityToModel(EntityFromModel(b)))
	assert.Nil(t, EntityToModel(nil))
	assert.Nil(t, EntityFromModel(nil))
}
