package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RemoteCart is the backend's view of an authenticated visitor's cart.
// Items are keyed by server-assigned IDs, not product IDs.
type RemoteCart struct {
	ID         int64            `json:"id"`
	User       *int64           `json:"user"`
	Items      []RemoteCartItem `json:"items"`
	TotalPrice decimal.Decimal  `json:"total_price"`
	TotalItems int              `json:"total_items"`
	CreatedAt  *time.Time       `json:"created_at,omitempty"`
	UpdatedAt  *time.Time       `json:"updated_at,omitempty"`
}

// RemoteCartItem is one server-side cart row
type RemoteCartItem struct {
	ID        int64           `json:"id"`
	Cart      int64           `json:"cart"`
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
}

// Clone returns a deep enough copy for callers to read without racing the owner
func (c *RemoteCart) Clone() *RemoteCart {
	if c == nil {
		return nil
	}
	out := *c
	out.Items = make([]RemoteCartItem, len(c.Items))
	copy(out.Items, c.Items)
	return &out
}

// SyncState tracks the last remote cart mutation
type SyncState string

const (
	// SyncStateIdle - no mutation issued yet
	SyncStateIdle SyncState = "idle"
	// SyncStateInFlight - a request is waiting on the backend
	SyncStateInFlight SyncState = "in-flight"
	// SyncStateApplied - the server cart replaced the local snapshot
	SyncStateApplied SyncState = "applied"
	// SyncStateFailed - the backend rejected the call; snapshot untouched
	SyncStateFailed SyncState = "failed"
)
