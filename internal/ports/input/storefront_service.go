package input

import (
	"context"

	"storefront/internal/domain"
)

// CatalogService interface - Input port (use case)
type CatalogService interface {
	ListProducts(ctx context.Context, query domain.ProductQuery) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}

// CheckoutService interface - Input port (use case)
type CheckoutService interface {
	Quote(method domain.ShippingMethod) domain.CheckoutQuote
	Checkout(ctx context.Context, customer domain.CustomerInfo) (*domain.CheckoutResult, error)
}

// WishlistService interface - Input port (use case)
type WishlistService interface {
	List(ctx context.Context) ([]domain.WishlistItem, error)
	Add(ctx context.Context, productID string) error
	Remove(ctx context.Context, productID string) error
	Toggle(ctx context.Context, productID string) (bool, error)
	IsFavorite(ctx context.Context, productID string) bool
}

// DashboardService interface - Input port (use case)
type DashboardService interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}
