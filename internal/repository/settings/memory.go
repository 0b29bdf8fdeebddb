package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

type memoryRepository struct {
	mu     sync.RWMutex
	values map[string]map[string][]byte
}

func NewMemoryRepository() *memoryRepository {
	return &memoryRepository{values: make(map[string]map[string][]byte)}
}

func (r *memoryRepository) Get(_ context.Context, clientID, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[clientID][key]
	if !ok {
		return nil, model.ErrSettingNotFound
	}
	return slices.Clone(v), nil
}

func (r *memoryRepository) Set(_ context.Context, clientID, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kv, ok := r.values[clientID]
	if !ok {
		kv = make(map[string][]byte)
		r.values[clientID] = kv
	}
	kv[key] = slices.Clone(value)
	return nil
}
