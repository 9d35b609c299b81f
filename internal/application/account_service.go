package application

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// AccountService struct - Application service for customer registration
type AccountService struct {
	auth output.AuthClient
}

// NewAccountService func - Creates new account service
func NewAccountService(auth output.AuthClient) *AccountService {
	return &AccountService{
		auth: auth,
	}
}

// Register func - Use case: create a customer account.
// Field errors from the backend come back as *domain.ValidationError.
func (s *AccountService) Register(ctx context.Context, request domain.RegisterRequest) (*domain.RegisterResponse, error) {
	result, err := s.auth.Register(ctx, request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}
