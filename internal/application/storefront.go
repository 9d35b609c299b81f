package application

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure NavigationRecorder implements Navigator interface
var _ output.Navigator = (*NavigationRecorder)(nil)

// NavigationRecorder struct - Navigator that remembers the last requested view
// until the HTTP layer takes it.
type NavigationRecorder struct {
	mu   sync.Mutex
	view domain.View
}

// Navigate func
func (n *NavigationRecorder) Navigate(view domain.View) {
	n.mu.Lock()
	n.view = view
	n.mu.Unlock()
}

// Take returns and clears the pending view, "" when there is none
func (n *NavigationRecorder) Take() domain.View {
	n.mu.Lock()
	defer n.mu.Unlock()
	view := n.view
	n.view = ""
	return view
}

// Storefront struct - the services owned by one visitor
type Storefront struct {
	VisitorID  string
	Session    *SessionService
	Cart       *CartService
	RemoteCart *RemoteCartService
	Checkout   *CheckoutService
	Wishlist   *WishlistService
	Navigator  *NavigationRecorder
}

// NewStorefront func - wires one visitor's services over store
func NewStorefront(ctx context.Context, visitorID string, store output.PersistentStore, backend output.BackendClient) *Storefront {
	navigator := &NavigationRecorder{}
	session := NewSessionService(ctx, store, backend, navigator)
	cart := NewCartService(ctx, store)

	return &Storefront{
		VisitorID:  visitorID,
		Session:    session,
		Cart:       cart,
		RemoteCart: NewRemoteCartService(session, backend, navigator),
		Checkout:   NewCheckoutService(session, cart, backend, navigator),
		Wishlist:   NewWishlistService(session, backend, store, navigator),
		Navigator:  navigator,
	}
}

// VisitorRegistry struct - maps visitor IDs to live Storefront bundles.
// Idle bundles expire from memory; their persisted cart and token do not.
type VisitorRegistry struct {
	visitors  output.VisitorStore
	store     output.PersistentStore
	backend   output.BackendClient
	namespace string
	timeout   time.Duration

	mu sync.Mutex
}

// NewVisitorRegistry func - Creates new visitor registry
func NewVisitorRegistry(visitors output.VisitorStore, store output.PersistentStore, backend output.BackendClient, namespace string, timeout time.Duration) *VisitorRegistry {
	return &VisitorRegistry{
		visitors:  visitors,
		store:     store,
		backend:   backend,
		namespace: namespace,
		timeout:   timeout,
	}
}

// Resolve returns the storefront for visitorID.
// A missing or malformed ID gets a fresh one; unknown or expired IDs are rebuilt from storage.
func (r *VisitorRegistry) Resolve(ctx context.Context, visitorID string) (*Storefront, error) {
	if _, err := uuid.Parse(visitorID); err != nil {
		visitorID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	visitor, err := r.visitors.GetVisitor(visitorID)
	if err != nil {
		return nil, err
	}
	if visitor != nil {
		if storefront, ok := visitor.Bundle.(*Storefront); ok {
			return storefront, nil
		}
	}

	store := NewScopedStore(r.store, r.namespace, visitorID)
	storefront := NewStorefront(ctx, visitorID, store, r.backend)

	if err := r.visitors.PutVisitor(domain.NewVisitor(visitorID, storefront, r.timeout)); err != nil {
		return nil, err
	}
	logrus.Debugf("Storefront created for visitor %s", visitorID)

	return storefront, nil
}

// Forget drops the in-memory bundle of a visitor
func (r *VisitorRegistry) Forget(visitorID string) error {
	return r.visitors.DeleteVisitor(visitorID)
}
