package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

func TestDeriveBounds(t *testing.T) {
	t.Parallel()

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()

		_, err := DeriveBounds(nil)
		assert.ErrorIs(t, err, model.ErrEmptyCatalog)
	})

	t.Run("ceil of max price and max moq", func(t *testing.T) {
		t.Parallel()

		got, err := DeriveBounds([]*model.ProductBatch{
			{ID: "a", UnitPriceUSD: 12.5, MOQ: 50},
			{ID: "b", UnitPriceUSD: 85.01, MOQ: 10},
			{ID: "c", UnitPriceUSD: 3, MOQ: 200},
		})
		require.NoError(t, err)
		assert.Equal(t, model.Bounds{MaxPrice: 86, MaxMOQ: 200}, got)
	})

	t.Run("integral max price is kept", func(t *testing.T) {
		t.Parallel()

		got, err := DeriveBounds([]*model.ProductBatch{{ID: "a", UnitPriceUSD: 40, MOQ: 1}})
		require.NoError(t, err)
		assert.InDelta(t, 40, got.MaxPrice, 0)
	})
}

func TestReclamp(t *testing.T) {
	t.Parallel()

	prev := model.Bounds{MaxPrice: 100, MaxMOQ: 500}

	type testCase struct {
		name  string
		state model.FilterState
		next  model.Bounds
		price model.Range[float64]
		moq   model.Range[int64]
	}

	tests := []testCase{
		{
			name:  "full range follows the bound upward",
			state: model.FullFilter(prev),
			next:  model.Bounds{MaxPrice: 150, MaxMOQ: 800},
			price: model.Range[float64]{Min: 0, Max: 150},
			moq:   model.Range[int64]{Min: 0, Max: 800},
		},
		{
			name: "narrowed range stays put when bounds grow",
			state: model.FilterState{
				PriceRange: model.Range[float64]{Min: 10, Max: 60},
				MOQRange:   model.Range[int64]{Min: 5, Max: 100},
			},
			next:  model.Bounds{MaxPrice: 150, MaxMOQ: 800},
			price: model.Range[float64]{Min: 10, Max: 60},
			moq:   model.Range[int64]{Min: 5, Max: 100},
		},
		{
			name: "ranges are clamped down when bounds shrink",
			state: model.FilterState{
				PriceRange: model.Range[float64]{Min: 90, Max: 95},
				MOQRange:   model.Range[int64]{Min: 400, Max: 450},
			},
			next:  model.Bounds{MaxPrice: 50, MaxMOQ: 300},
			price: model.Range[float64]{Min: 50, Max: 50},
			moq:   model.Range[int64]{Min: 300, Max: 300},
		},
		{
			name: "inverted range is left inverted",
			state: model.FilterState{
				PriceRange: model.Range[float64]{Min: 70, Max: 20},
				MOQRange:   model.Range[int64]{Min: 0, Max: 500},
			},
			next:  model.Bounds{MaxPrice: 100, MaxMOQ: 500},
			price: model.Range[float64]{Min: 70, Max: 20},
			moq:   model.Range[int64]{Min: 0, Max: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Reclamp(tt.state, prev, tt.next)
			assert.Equal(t, tt.price, got.PriceRange)
			assert.Equal(t, tt.moq, got.MOQRange)
		})
	}
}
