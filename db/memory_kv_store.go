package db

import (
	"fmt"
	"sync"
)

// MemoryKVStore is a thread-safe in-memory key-value store backing the
// geocode result cache.
type MemoryKVStore struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewMemoryKVStore initializes a new MemoryKVStore.
func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{
		data: make(map[string]string),
	}
}

// Set stores a key-value pair.
func (m *MemoryKVStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves the value for a given key.
func (m *MemoryKVStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// Del removes a key.
func (m *MemoryKVStore) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
