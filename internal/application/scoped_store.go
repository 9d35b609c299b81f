package application

import (
	"context"

	"storefront/internal/ports/output"
)

// Compile-time check to ensure ScopedStore implements PersistentStore interface
var _ output.PersistentStore = (*ScopedStore)(nil)

// ScopedStore struct - Visitor-scoped view of a shared PersistentStore.
// Every key is stored as <namespace>:<visitor>:<key>.
type ScopedStore struct {
	store  output.PersistentStore
	prefix string
}

// NewScopedStore func - Creates a store view for one visitor
func NewScopedStore(store output.PersistentStore, namespace, visitorID string) *ScopedStore {
	return &ScopedStore{
		store:  store,
		prefix: namespace + ":" + visitorID + ":",
	}
}

// Get func
func (s *ScopedStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.store.Get(ctx, s.prefix+key)
}

// Set func
func (s *ScopedStore) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.prefix+key, value)
}

// Delete func
func (s *ScopedStore) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, s.prefix+key)
}
