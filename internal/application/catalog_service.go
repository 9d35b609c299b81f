package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure CatalogService implements the input port
var _ input.CatalogService = (*CatalogService)(nil)

// CatalogService struct - Application service for product browsing
type CatalogService struct {
	client  output.CatalogClient
	timeout time.Duration
}

// NewCatalogService func - Creates new catalog service.
// timeout bounds the product listing call only.
func NewCatalogService(client output.CatalogClient, timeout time.Duration) *CatalogService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CatalogService{
		client:  client,
		timeout: timeout,
	}
}

// ListProducts func - Use case: list products with filtering and pagination
func (s *CatalogService) ListProducts(ctx context.Context, query domain.ProductQuery) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	products, err := s.client.ListProducts(ctx)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, domain.ErrBackendTimeout) {
			err = fmt.Errorf("%w: product listing exceeded %v", domain.ErrBackendTimeout, s.timeout)
		}
		logrus.Errorln(err)
		return nil, err
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if query.Matches(product) {
			filtered = append(filtered, product)
		}
	}

	return paginate(filtered, query.Page, query.Limit), nil
}

// paginate slices products by 1-based page. No limit means no paging.
func paginate(products []domain.Product, page, limit *int) []domain.Product {
	if limit == nil || *limit <= 0 {
		return products
	}
	p := 1
	if page != nil && *page > 0 {
		p = *page
	}

	offset := (p - 1) * *limit
	if offset >= len(products) {
		return []domain.Product{}
	}
	end := offset + *limit
	if end > len(products) {
		end = len(products)
	}
	return products[offset:end]
}

// GetProduct func - Use case: fetch one product
func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrInvalidRequest)
	}

	product, err := s.client.GetProduct(ctx, productID)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return product, nil
}
