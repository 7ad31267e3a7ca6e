package secrets

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore implements Store using in-memory storage. This is
// suitable for tests and single-process use; values are lost when the
// process exits.
type MemoryStore struct {
	service string

	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates a new memory-based secret store namespaced
// under the given service identifier.
func NewMemoryStore(service string) *MemoryStore {
	return &MemoryStore{
		service: service,
		data:    make(map[string]string),
	}
}

// Set saves a value under the given key.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("secret key cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[m.service+"/"+key] = value
	return nil
}

// Get retrieves a value by key.
func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("secret key cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.data[m.service+"/"+key]
	if !exists {
		return "", ErrNotFound
	}
	return value, nil
}

// Delete removes a key.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("secret key cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, m.service+"/"+key)
	return nil
}

// Close clears all stored values.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string]string)
	return nil
}

// Len returns the number of stored values (for testing/debugging).
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
