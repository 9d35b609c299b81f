package memory

import (
	"sync"
	"time"

	"storefront/internal/domain"
	"storefront/internal/ports/output"
)

// Compile-time check to ensure MemoryVisitorStore implements VisitorStore interface
var _ output.VisitorStore = (*MemoryVisitorStore)(nil)

// MemoryVisitorStore struct - Output adapter for in-memory visitor bundles
// Uses sync.Map for thread-safe concurrent access. Stores the idle timeout so the
// application layer can create visitors with the same expiry.
type MemoryVisitorStore struct {
	visitors sync.Map
	timeout  time.Duration
}

// NewMemoryVisitorStore creates a new in-memory visitor store.
// timeout: idle duration after which a visitor bundle is dropped
func NewMemoryVisitorStore(timeout time.Duration) *MemoryVisitorStore {
	return &MemoryVisitorStore{
		timeout: timeout,
	}
}

// GetTimeout returns the configured idle timeout
func (m *MemoryVisitorStore) GetTimeout() time.Duration {
	return m.timeout
}

// GetVisitor retrieves a visitor by ID.
// Returns nil if the visitor does not exist or has expired. Expired visitors
// are deleted (lazy cleanup). LastAccessTime is updated for valid visitors.
func (m *MemoryVisitorStore) GetVisitor(visitorID string) (*domain.Visitor, error) {
	value, exists := m.visitors.Load(visitorID)
	if !exists {
		return nil, nil
	}

	visitor, ok := value.(*domain.Visitor)
	if !ok {
		m.visitors.Delete(visitorID)
		return nil, nil
	}

	if visitor.IsExpired() {
		m.visitors.Delete(visitorID)
		return nil, nil
	}

	visitor.LastAccessTime = time.Now()

	return visitor, nil
}

// PutVisitor creates or replaces a visitor record
func (m *MemoryVisitorStore) PutVisitor(visitor *domain.Visitor) error {
	visitor.LastAccessTime = time.Now()
	m.visitors.Store(visitor.ID, visitor)
	return nil
}

// DeleteVisitor removes a visitor. Idempotent.
func (m *MemoryVisitorStore) DeleteVisitor(visitorID string) error {
	m.visitors.Delete(visitorID)
	return nil
}
