package landedcost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

func TestEstimate(t *testing.T) {
	t.Parallel()

	batch := &model.ProductBatch{ID: "batch_1", UnitPriceUSD: 12.5, MOQ: 50}

	type testCase struct {
		name     string
		quantity int64
		dest     model.Destination
		assert   func(t *testing.T, got model.LandedCost, err error)
	}

	tests := []testCase{
		{
			name:     "below moq",
			quantity: 49,
			dest:     model.DestinationUSA,
			assert: func(t *testing.T, _ model.LandedCost, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.ErrorContains(t, err, "minimum order quantity 50")
			},
		},
		{
			name:     "unknown destination",
			quantity: 100,
			dest:     "Mars",
			assert: func(t *testing.T, _ model.LandedCost, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name:     "at moq",
			quantity: 50,
			dest:     model.DestinationEU,
			assert: func(t *testing.T, got model.LandedCost, err error) {
				require.NoError(t, err)
				assert.Equal(t, "625.00", got.ProductCost.StringFixed(2))
				assert.Equal(t, "175.00", got.Shipping.StringFixed(2))
				assert.Equal(t, "50.00", got.Duties.StringFixed(2))
				assert.Equal(t, "6.25", got.Insurance.StringFixed(2))
				assert.Equal(t, "856.25", got.Total.StringFixed(2))
				assert.Equal(t, "17.13", got.PerUnit.StringFixed(2))
			},
		},
		{
			name:     "rounds to cents",
			quantity: 51,
			dest:     model.DestinationCanada,
			assert: func(t *testing.T, got model.LandedCost, err error) {
				require.NoError(t, err)
				// 637.50 + 178.50 + 51.00 + 6.375
				assert.Equal(t, "6.38", got.Insurance.StringFixed(2))
				assert.Equal(t, "873.38", got.Total.StringFixed(2))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Estimate(batch, tt.quantity, tt.dest)
			tt.assert(t, got, err)
		})
	}
}
