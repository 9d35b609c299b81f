package application

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure WishlistService implements the input port
var _ input.WishlistService = (*WishlistService)(nil)

// WishlistService struct - Application service for saved products.
// Product IDs are mirrored locally so favourites still render when the backend is down.
type WishlistService struct {
	session   *SessionService
	client    output.WishlistClient
	store     output.PersistentStore
	navigator output.Navigator

	mu sync.Mutex
}

// NewWishlistService func - Creates new wishlist service.
// The local mirror belongs to the signed-in customer and is dropped on logout.
func NewWishlistService(session *SessionService, client output.WishlistClient, store output.PersistentStore, navigator output.Navigator) *WishlistService {
	s := &WishlistService{
		session:   session,
		client:    client,
		store:     store,
		navigator: navigator,
	}
	session.OnLogout(func(ctx context.Context) {
		s.clearLocal(ctx)
	})
	return s
}

// List func - Use case: fetch the wishlist and refresh the local mirror
func (s *WishlistService) List(ctx context.Context) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	err := s.session.Do(ctx, func(ctx context.Context, token string) error {
		list, err := s.client.Wishlist(ctx, token)
		if err != nil {
			return err
		}
		items = list
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	s.mu.Lock()
	s.saveLocal(ctx, ids)
	s.mu.Unlock()

	return items, nil
}

// Add func - Use case: save a product
func (s *WishlistService) Add(ctx context.Context, productID string) error {
	return s.change(ctx, productID, true)
}

// Remove func - Use case: unsave a product
func (s *WishlistService) Remove(ctx context.Context, productID string) error {
	return s.change(ctx, productID, false)
}

func (s *WishlistService) change(ctx context.Context, productID string, add bool) error {
	if _, ok := s.session.GetToken(ctx); !ok {
		if s.navigator != nil {
			s.navigator.Navigate(domain.ViewLogin)
		}
		return domain.ErrLoginRequired
	}

	err := s.session.Do(ctx, func(ctx context.Context, token string) error {
		if add {
			return s.client.AddToWishlist(ctx, token, productID)
		}
		return s.client.RemoveFromWishlist(ctx, token, productID)
	})
	if err != nil {
		logrus.Errorf("Wishlist update for %s failed: %v", productID, err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.loadLocal(ctx)
	kept := ids[:0]
	for _, id := range ids {
		if id != productID {
			kept = append(kept, id)
		}
	}
	if add {
		kept = append(kept, productID)
	}
	s.saveLocal(ctx, kept)
	return nil
}

// Toggle func - Use case: flip a product's saved state, returns the new state
func (s *WishlistService) Toggle(ctx context.Context, productID string) (bool, error) {
	if s.IsFavorite(ctx, productID) {
		return false, s.Remove(ctx, productID)
	}
	return true, s.Add(ctx, productID)
}

// IsFavorite func - checks the backend, falling back to the local mirror
func (s *WishlistService) IsFavorite(ctx context.Context, productID string) bool {
	items, err := s.List(ctx)
	if err == nil {
		for _, item := range items {
			if item.ProductID == productID {
				return true
			}
		}
		return false
	}
	if !errors.Is(err, domain.ErrLoginRequired) {
		logrus.Warnf("Wishlist unavailable, using local copy: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.loadLocal(ctx) {
		if id == productID {
			return true
		}
	}
	return false
}

func (s *WishlistService) loadLocal(ctx context.Context) []string {
	if s.store == nil {
		return nil
	}
	blob, found, err := s.store.Get(ctx, domain.StorageKeyWishlist)
	if err != nil || !found {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(blob), &ids); err != nil {
		logrus.Warnf("Ignoring unreadable wishlist blob: %v", err)
		return nil
	}
	return ids
}

func (s *WishlistService) saveLocal(ctx context.Context, ids []string) {
	if s.store == nil {
		return
	}
	if ids == nil {
		ids = []string{}
	}
	blob, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, domain.StorageKeyWishlist, string(blob)); err != nil {
		logrus.Errorf("Failed to persist wishlist: %v", err)
	}
}

func (s *WishlistService) clearLocal(ctx context.Context) {
	if s.store == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Delete(ctx, domain.StorageKeyWishlist); err != nil {
		logrus.Errorf("Failed to clear wishlist: %v", err)
	}
}
