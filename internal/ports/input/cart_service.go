package input

import (
	"context"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

// CartService interface - Input port (use case)
// The visitor's local cart, persisted on every mutation.
type CartService interface {
	AddToCart(ctx context.Context, product domain.Product) error
	RemoveFromCart(ctx context.Context, productID string) error
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	ClearCart(ctx context.Context) error
	Items() domain.Cart
	Total() decimal.Decimal
}

// RemoteCartService interface - Input port (use case)
// Server-side cart of an authenticated visitor. Every mutation is a round-trip
// and the returned server cart replaces the local snapshot.
type RemoteCartService interface {
	FetchCart(ctx context.Context) (*domain.RemoteCart, error)
	AddToCart(ctx context.Context, productID string, quantity int) (*domain.RemoteCart, error)
	RemoveFromCart(ctx context.Context, itemID int64) (*domain.RemoteCart, error)
	UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*domain.RemoteCart, error)
	Snapshot() *domain.RemoteCart
	State() domain.SyncState
}
