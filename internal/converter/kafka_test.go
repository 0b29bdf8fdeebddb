package converter

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

func TestBatchListedPayload(t *testing.T) {
	t.Parallel()

	c := NewKafkaConverter()
	in := &model.ProductBatch{
		ID:             "batch_" + gofakeit.UUID(),
		ProductID:      "prod_1",
		SupplierID:     "supp_1",
		Title:          gofakeit.ProductName(),
		Country:        "Guatemala",
		UnitPriceUSD:   18.75,
		MOQ:            25,
		Specs:          map[string]string{"Dye": "Natural"},
		Images:         []string{"https://picsum.photos/800/600"},
		Status:         model.BatchStatusVerifying,
		MLQualityScore: lo.ToPtr(model.QualityB),
		ListedAt:       time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	payload, err := c.BatchListedToPayload(in)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"unitPriceUSD":18.75`)
	assert.Contains(t, string(payload), `"eventId"`)

	out, err := c.BatchListedFromPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestBatchListedFromPayloadRejects(t *testing.T) {
	t.Parallel()

	c := NewKafkaConverter()

	_, err := c.BatchListedFromPayload([]byte(`{"title":"no id"}`))
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = c.BatchListedFromPayload([]byte(`not json`))
	assert.Error(t, err)
}
