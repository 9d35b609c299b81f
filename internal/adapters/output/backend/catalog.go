package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

// productListResponse wraps /api/product/all
type productListResponse struct {
	Data []domain.Product `json:"data"`
}

// productResponse wraps /api/product/byId/{id}
type productResponse struct {
	Data *domain.Product `json:"data"`
}

// ListProducts fetches the full catalog
func (a *ClientAdapter) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var response productListResponse
	if err := a.do(ctx, request{method: http.MethodGet, path: "/api/product/all"}, &response); err != nil {
		return nil, err
	}
	if response.Data == nil {
		response.Data = []domain.Product{}
	}

	logrus.Infof("Listed %d products from backend", len(response.Data))

	return response.Data, nil
}

// GetProduct fetches one product
func (a *ClientAdapter) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var response productResponse
	path := "/api/product/byId/" + url.PathEscape(productID)
	if err := a.do(ctx, request{method: http.MethodGet, path: path}, &response); err != nil {
		return nil, err
	}
	if response.Data == nil {
		return nil, errors.New("invalid API response format: missing data")
	}
	return response.Data, nil
}
