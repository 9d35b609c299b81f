package memory

import (
	"context"
	"sync"

	"storefront/internal/ports/output"
)

// Compile-time check to ensure KVStore implements PersistentStore interface
var _ output.PersistentStore = (*KVStore)(nil)

// KVStore struct - Output adapter for in-memory persistent storage.
// Used when no database is configured and as a test double.
type KVStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewKVStore creates an empty in-memory key-value store
func NewKVStore() *KVStore {
	return &KVStore{
		entries: make(map[string]string),
	}
}

// Get returns the stored value for key
func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, found := s.entries[key]
	return value, found, nil
}

// Set stores value under key
func (s *KVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored keys
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
