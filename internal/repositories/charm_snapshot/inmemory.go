package charmsnapshot

import (
	"context"
	"sync"

	"github.com/KirkDiggler/charm-tracker/internal/errors"
)

// InMemoryRepository implements Repository with a map of encoded payloads.
// Payloads go through the same codec as the other backends, so callers never
// share slices with the repository.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Load returns the snapshot stored under the key
func (r *InMemoryRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.RLock()
	data, exists := r.store[input.Key]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("snapshot %s not found", input.Key)
	}

	charms, err := decode(input.Key, data)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Charms: charms}, nil
}

// Save replaces the snapshot stored under the key
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	data, err := encode(input.Charms)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.store[input.Key] = data
	r.mu.Unlock()

	return &SaveOutput{Bytes: len(data)}, nil
}

// Put stores a raw payload under key, bypassing the codec.
// Tests use it to seed corrupt or legacy snapshots.
func (r *InMemoryRepository) Put(key string, payload []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[key] = append([]byte(nil), payload...)
}
