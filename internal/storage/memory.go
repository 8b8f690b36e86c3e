// internal/storage/memory.go
package storage

import (
	"context"
	"sync"
)

// MemoryStore is a volatile Store for tests and ephemeral sessions
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailSaves makes every Save return an error, for exercising the
	// swallow-persist-errors contract
	FailSaves bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load reads the value stored for key
func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save writes the value for key
func (m *MemoryStore) Save(_ context.Context, key string, data []byte) error {
	if m.FailSaves {
		return errSaveFailed
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.data[key] = stored
	return nil
}

// Delete removes the value stored for key
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

var errSaveFailed = &saveError{}

type saveError struct{}

func (*saveError) Error() string { return "storage: save failed" }
