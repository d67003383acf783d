package kvstore

import (
	"context"
	"sync"
)

// InMemoryRepository is a map-backed Repository used in tests and anywhere
// durability is not required.
type InMemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{data: make(map[string][]byte)}
}

func (r *InMemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (r *InMemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set(key, value)
	return nil
}

func (r *InMemoryRepository) SetMany(_ context.Context, items map[string][]byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, value := range items {
		r.set(key, value)
	}
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *InMemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[string][]byte)
	return nil
}

func (r *InMemoryRepository) set(key string, value []byte) {
	cp := make([]byte, len(value))
	copy(cp, value)
	r.data[key] = cp
}
