package backend

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain"
)

type wishlistResponse struct {
	Wishlist []domain.WishlistItem `json:"wishlist"`
}

// Wishlist fetches /wishlist/
func (a *ClientAdapter) Wishlist(ctx context.Context, token string) ([]domain.WishlistItem, error) {
	var response wishlistResponse
	if err := a.do(ctx, request{method: http.MethodGet, path: "/wishlist/", token: token}, &response); err != nil {
		return nil, err
	}
	if response.Wishlist == nil {
		response.Wishlist = []domain.WishlistItem{}
	}
	return response.Wishlist, nil
}

// AddToWishlist posts to /wishlist/add/{id}/
func (a *ClientAdapter) AddToWishlist(ctx context.Context, token, productID string) error {
	path := "/wishlist/add/" + url.PathEscape(productID) + "/"
	return a.do(ctx, request{method: http.MethodPost, path: path, token: token}, nil)
}

// RemoveFromWishlist posts to /wishlist/remove/{id}/
func (a *ClientAdapter) RemoveFromWishlist(ctx context.Context, token, productID string) error {
	path := "/wishlist/remove/" + url.PathEscape(productID) + "/"
	return a.do(ctx, request{method: http.MethodPost, path: path, token: token}, nil)
}
