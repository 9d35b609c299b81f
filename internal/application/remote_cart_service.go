package application

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure RemoteCartService implements the input port
var _ input.RemoteCartService = (*RemoteCartService)(nil)

// RemoteCartService struct - Application service mirroring the server-side cart.
// Each action is one backend round-trip; the returned cart replaces the snapshot.
type RemoteCartService struct {
	session   *SessionService
	client    output.CartClient
	navigator output.Navigator

	mu       sync.RWMutex
	snapshot *domain.RemoteCart
	state    domain.SyncState

	// generation advances on every logout; responses from an older one are dropped
	generation uint64
}

// NewRemoteCartService func - Creates new remote cart service bound to session.
// The snapshot is refreshed on login and dropped on logout.
func NewRemoteCartService(session *SessionService, client output.CartClient, navigator output.Navigator) *RemoteCartService {
	s := &RemoteCartService{
		session:   session,
		client:    client,
		navigator: navigator,
		state:     domain.SyncStateIdle,
	}

	session.OnLogin(func(ctx context.Context) {
		if _, err := s.FetchCart(ctx); err != nil {
			logrus.Warnf("Failed to refresh remote cart after login: %v", err)
		}
	})
	session.OnLogout(func(ctx context.Context) {
		s.reset()
	})

	return s
}

// FetchCart func - Use case: load the current server cart
func (s *RemoteCartService) FetchCart(ctx context.Context) (*domain.RemoteCart, error) {
	return s.mutate(ctx, "fetch", func(ctx context.Context, token string) (*domain.RemoteCart, error) {
		return s.client.CurrentCart(ctx, token)
	})
}

// AddToCart func - Use case: add quantity units of a product on the server.
// Without a session the visitor is sent to the login view and nothing is sent.
func (s *RemoteCartService) AddToCart(ctx context.Context, productID string, quantity int) (*domain.RemoteCart, error) {
	if _, ok := s.session.GetToken(ctx); !ok {
		if s.navigator != nil {
			s.navigator.Navigate(domain.ViewLogin)
		}
		return nil, domain.ErrLoginRequired
	}

	return s.mutate(ctx, "add", func(ctx context.Context, token string) (*domain.RemoteCart, error) {
		return s.client.AddItem(ctx, token, productID, quantity)
	})
}

// RemoveFromCart func - Use case: remove a server cart item
func (s *RemoteCartService) RemoveFromCart(ctx context.Context, itemID int64) (*domain.RemoteCart, error) {
	return s.mutate(ctx, "remove", func(ctx context.Context, token string) (*domain.RemoteCart, error) {
		return s.client.RemoveItem(ctx, token, itemID)
	})
}

// UpdateQuantity func - Use case: set a server cart item's quantity
func (s *RemoteCartService) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*domain.RemoteCart, error) {
	return s.mutate(ctx, "update", func(ctx context.Context, token string) (*domain.RemoteCart, error) {
		return s.client.UpdateItemQuantity(ctx, token, itemID, quantity)
	})
}

// mutate runs idle -> in-flight -> applied|failed for one call.
// The lock is not held across the call; the last response to arrive wins
// unless the session ended while it was in flight.
func (s *RemoteCartService) mutate(ctx context.Context, action string, call func(ctx context.Context, token string) (*domain.RemoteCart, error)) (*domain.RemoteCart, error) {
	if _, ok := s.session.GetToken(ctx); !ok {
		return nil, domain.ErrLoginRequired
	}

	s.mu.Lock()
	generation := s.generation
	s.state = domain.SyncStateInFlight
	s.mu.Unlock()

	var cart *domain.RemoteCart
	err := s.session.Do(ctx, func(ctx context.Context, token string) error {
		c, err := call(ctx, token)
		if err != nil {
			return err
		}
		cart = c
		return nil
	})
	if err != nil {
		logrus.Errorf("Remote cart %s failed: %v", action, err)
		s.setState(generation, domain.SyncStateFailed)
		return nil, err
	}
	if cart == nil {
		s.setState(generation, domain.SyncStateFailed)
		return nil, fmt.Errorf("%w: remote cart %s returned no cart", domain.ErrBackendUnavailable, action)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		logrus.Warnf("Dropping remote cart %s response: session ended while in flight", action)
		return nil, fmt.Errorf("%w: session ended during remote cart %s", domain.ErrLoginRequired, action)
	}
	s.snapshot = cart
	s.state = domain.SyncStateApplied

	return cart.Clone(), nil
}

// setState is a no-op once the session that started the call has ended
func (s *RemoteCartService) setState(generation uint64, state domain.SyncState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation == generation {
		s.state = state
	}
}

func (s *RemoteCartService) reset() {
	s.mu.Lock()
	s.generation++
	s.snapshot = nil
	s.state = domain.SyncStateIdle
	s.mu.Unlock()
}

// Snapshot func - last server cart applied, or nil
func (s *RemoteCartService) Snapshot() *domain.RemoteCart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// State func
func (s *RemoteCartService) State() domain.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
