package output

import (
	"context"

	"storefront/internal/domain"
)

// AuthClient interface - Output port
// Defines what the application needs from the backend's account endpoints.
type AuthClient interface {
	// Login posts form-encoded credentials and returns the issued tokens.
	// Several aliases for the token field names are accepted.
	Login(ctx context.Context, request domain.LoginRequest) (*domain.TokenPair, error)

	// Register posts a registration payload. A 400 returns *domain.ValidationError
	// holding the backend's field map.
	Register(ctx context.Context, request domain.RegisterRequest) (*domain.RegisterResponse, error)

	// Profile fetches the profile of the bearer of token.
	Profile(ctx context.Context, token string) (*domain.UserProfile, error)
}

// CatalogClient interface - Output port
type CatalogClient interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}

// CartClient interface - Output port
// Remote cart operations. Each call returns the full updated server cart.
type CartClient interface {
	CurrentCart(ctx context.Context, token string) (*domain.RemoteCart, error)
	AddItem(ctx context.Context, token, productID string, quantity int) (*domain.RemoteCart, error)
	RemoveItem(ctx context.Context, token string, itemID int64) (*domain.RemoteCart, error)
	UpdateItemQuantity(ctx context.Context, token string, itemID int64, quantity int) (*domain.RemoteCart, error)
}

// OrderClient interface - Output port
type OrderClient interface {
	Checkout(ctx context.Context, token string, request domain.CheckoutRequest) (*domain.CheckoutResult, error)
	Summary(ctx context.Context) (*domain.Summary, error)
	OrderProducts(ctx context.Context, orderID int) ([]domain.OrderLine, error)
}

// WishlistClient interface - Output port
type WishlistClient interface {
	Wishlist(ctx context.Context, token string) ([]domain.WishlistItem, error)
	AddToWishlist(ctx context.Context, token, productID string) error
	RemoveFromWishlist(ctx context.Context, token, productID string) error
}

// BackendClient groups every backend port served by one HTTP adapter
type BackendClient interface {
	AuthClient
	CatalogClient
	CartClient
	OrderClient
	WishlistClient
}
