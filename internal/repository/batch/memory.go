package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

type memoryRepository struct {
	mu      sync.RWMutex
	batches []*model.ProductBatch
	ids     map[string]struct{}
}

// NewMemoryRepository keeps batches in insertion order for the lifetime of the process.
func NewMemoryRepository() *memoryRepository {
	return &memoryRepository{ids: make(map[string]struct{})}
}

func (r *memoryRepository) List(_ context.Context) ([]*model.ProductBatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.batches), nil
}

func (r *memoryRepository) Create(_ context.Context, batch *model.ProductBatch) error {
	const op = "repository.memory.Create"

	if batch.ID == "" {
		return fmt.Errorf("%s: %w", op, errors.Join(model.ErrValidation, errors.New("batch id is empty")))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[batch.ID]; ok {
		return model.ErrBatchAlreadyExists
	}
	if batch.ListedAt.IsZero() {
		batch.ListedAt = time.Now().UTC()
	}
	r.ids[batch.ID] = struct{}{}
	r.batches = append(r.batches, batch)
	return nil
}

func (r *memoryRepository) CreateBatch(ctx context.Context, batches []*model.ProductBatch) error {
	for _, b := range batches {
		if b == nil {
			continue
		}
		if err := r.Create(ctx, b); err != nil && !errors.Is(err, model.ErrBatchAlreadyExists) {
			return err
		}
	}
	return nil
}
