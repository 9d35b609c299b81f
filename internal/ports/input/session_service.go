package input

import (
	"context"

	"storefront/internal/domain"
)

// SessionService interface - Input port (use case)
// Single source of truth for whether the visitor is authenticated and for the
// bearer token attached to outbound requests.
type SessionService interface {
	Login(ctx context.Context, token string) error
	Authenticate(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	GetToken(ctx context.Context) (string, bool)
	IsAuthenticated() bool
	FetchUserData(ctx context.Context) *domain.UserProfile
}

// AccountService interface - Input port (use case)
type AccountService interface {
	Register(ctx context.Context, request domain.RegisterRequest) (*domain.RegisterResponse, error)
}
