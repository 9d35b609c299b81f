package backend

import (
	"context"
	"net/http"

	"storefront/internal/domain"
)

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type removeItemRequest struct {
	ItemID int64 `json:"item_id"`
}

type updateQuantityRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// CurrentCart fetches /api/carts/current/
func (a *ClientAdapter) CurrentCart(ctx context.Context, token string) (*domain.RemoteCart, error) {
	return a.cartCall(ctx, http.MethodGet, "/api/carts/current/", token, nil)
}

// AddItem posts to /api/carts/add_item/
func (a *ClientAdapter) AddItem(ctx context.Context, token, productID string, quantity int) (*domain.RemoteCart, error) {
	return a.cartCall(ctx, http.MethodPost, "/api/carts/add_item/", token, addItemRequest{
		ProductID: productID,
		Quantity:  quantity,
	})
}

// RemoveItem posts to /api/carts/remove_item/
func (a *ClientAdapter) RemoveItem(ctx context.Context, token string, itemID int64) (*domain.RemoteCart, error) {
	return a.cartCall(ctx, http.MethodPost, "/api/carts/remove_item/", token, removeItemRequest{
		ItemID: itemID,
	})
}

// UpdateItemQuantity posts to /api/carts/update_quantity/
func (a *ClientAdapter) UpdateItemQuantity(ctx context.Context, token string, itemID int64, quantity int) (*domain.RemoteCart, error) {
	return a.cartCall(ctx, http.MethodPost, "/api/carts/update_quantity/", token, updateQuantityRequest{
		ItemID:   itemID,
		Quantity: quantity,
	})
}

func (a *ClientAdapter) cartCall(ctx context.Context, method, path, token string, payload interface{}) (*domain.RemoteCart, error) {
	req, err := jsonRequest(method, path, token, payload)
	if err != nil {
		return nil, err
	}

	var cart domain.RemoteCart
	if err := a.do(ctx, req, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []domain.RemoteCartItem{}
	}
	return &cart, nil
}
