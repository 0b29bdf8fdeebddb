package repository

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

func TestMemoryRepositorySupplier(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository(SeedSuppliers())

	tests := []struct {
		name   string
		id     string
		assert func(t *testing.T, s model.Supplier, err error)
	}{
		{
			name: "seeded supplier",
			id:   "supp_cusco_textiles",
			assert: func(t *testing.T, s model.Supplier, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Peru", s.Country)
				assert.Equal(t, model.VerificationVerified, s.VerificationStatus)
			},
		},
		{
			name: "surrounding spaces are ignored",
			id:   "  supp_fes_artisans ",
			assert: func(t *testing.T, s model.Supplier, err error) {
				require.NoError(t, err)
				assert.Equal(t, "supp_fes_artisans", s.ID)
			},
		},
		{
			name: "unknown supplier",
			id:   "supp_unknown",
			assert: func(t *testing.T, _ model.Supplier, err error) {
				assert.ErrorIs(t, err, model.ErrSupplierNotFound)
			},
		},
		{
			name: "blank id",
			id:   " ",
			assert: func(t *testing.T, _ model.Supplier, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := repo.Supplier(context.Background(), tt.id)
			tt.assert(t, s, err)
		})
	}
}

func TestSeedSuppliersCoverUniqueIDs(t *testing.T) {
	t.Parallel()

	seed := SeedSuppliers()
	ids := lo.Map(seed, func(s model.Supplier, _ int) string { return s.ID })

	assert.Len(t, lo.Uniq(ids), len(seed))
	for _, s := range seed {
		assert.True(t, s.Rating >= 0 && s.Rating <= 5, s.ID)
		assert.False(t, s.MemberSince.IsZero(), s.ID)
	}
}
