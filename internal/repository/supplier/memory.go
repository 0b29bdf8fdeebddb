package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

// memoryRepository is a read-only supplier directory.
type memoryRepository struct {
	byID map[string]model.Supplier
}

func NewMemoryRepository(suppliers []model.Supplier) *memoryRepository {
	return &memoryRepository{
		byID: lo.KeyBy(suppliers, func(s model.Supplier) string { return s.ID }),
	}
}

func (r *memoryRepository) Supplier(_ context.Context, id string) (model.Supplier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Supplier{}, errors.Join(model.ErrValidation, errors.New("supplier id must be non-empty"))
	}

	s, ok := r.byID[id]
	if !ok {
		return model.Supplier{}, model.ErrSupplierNotFound
	}
	return s, nil
}
