package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/internal/ports/output"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure CartService implements the input port
var _ input.CartService = (*CartService)(nil)

// CartService struct - Application service holding the visitor's local cart.
// A nil store means persistence is unavailable: the cart lives in memory only.
type CartService struct {
	store output.PersistentStore

	mu    sync.Mutex
	items domain.Cart
}

// NewCartService func - Creates new cart service, hydrated before it is returned
func NewCartService(ctx context.Context, store output.PersistentStore) *CartService {
	s := &CartService{
		store: store,
		items: domain.Cart{},
	}
	s.hydrate(ctx)
	return s
}

func (s *CartService) hydrate(ctx context.Context) {
	if s.store == nil {
		logrus.Debugln("Persistent storage unavailable, starting with an empty cart")
		return
	}

	blob, found, err := s.store.Get(ctx, domain.StorageKeyCart)
	if err != nil {
		logrus.Errorf("Failed to load cart: %v", err)
		return
	}
	if !found || blob == "" {
		return
	}

	var items domain.Cart
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		logrus.Warnf("Ignoring unreadable cart blob: %v", err)
		return
	}
	if items != nil {
		s.items = items
	}
}

// persist writes the whole cart; callers hold mu
func (s *CartService) persist(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	blob, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	if err := s.store.Set(ctx, domain.StorageKeyCart, string(blob)); err != nil {
		logrus.Errorf("Failed to persist cart: %v", err)
		return err
	}
	return nil
}

// AddToCart func - Use case: add one unit of product.
// An existing line for the same product is incremented instead of duplicated.
func (s *CartService) AddToCart(ctx context.Context, product domain.Product) error {
	if product.ProductID == "" {
		return fmt.Errorf("%w: product_id is required", domain.ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.items.Find(product.ProductID); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, domain.NewLineItem(product))
	}
	return s.persist(ctx)
}

// RemoveFromCart func - Use case: drop a line. Missing products are a no-op.
func (s *CartService) RemoveFromCart(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.items.Find(productID)
	if i < 0 {
		return nil
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return s.persist(ctx)
}

// UpdateQuantity func - Use case: overwrite a line's quantity.
// Values below 1 are stored as given; callers validate.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.items.Find(productID)
	if i < 0 {
		return nil
	}
	s.items[i].Quantity = quantity
	return s.persist(ctx)
}

// ClearCart func - Use case: empty the cart
func (s *CartService) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = domain.Cart{}
	return s.persist(ctx)
}

// Items func - returns a copy of the current lines in insertion order
func (s *CartService) Items() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Clone()
}

// Total func
func (s *CartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Total()
}
