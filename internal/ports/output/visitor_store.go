package output

import "storefront/internal/domain"

// VisitorStore interface - Output port
// Holds live per-visitor service bundles. Implementations must be thread-safe
// for concurrent access.
type VisitorStore interface {
	// GetVisitor returns the visitor if found and not expired, or nil.
	// Expired visitors are removed lazily and LastAccessTime is refreshed
	// for valid ones. Returns an error only on storage access failure.
	GetVisitor(visitorID string) (*domain.Visitor, error)

	// PutVisitor creates or replaces a visitor record.
	PutVisitor(visitor *domain.Visitor) error

	// DeleteVisitor removes a visitor. Deleting a missing visitor is not an error.
	DeleteVisitor(visitorID string) error
}
