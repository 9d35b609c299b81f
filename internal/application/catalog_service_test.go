package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ProductID: "1", Category: "kitchen", IsTrending: true},
		{ProductID: "2", Category: "bath", IsNewRelease: true},
		{ProductID: "3", Category: "kitchen", IsNewRelease: true},
		{ProductID: "4", Category: "kitchen"},
		{ProductID: "5", Category: "garden", IsTrending: true},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ProductID)
	}
	return out
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestListProductsFiltersAndPages(t *testing.T) {
	backend := &MockBackend{ListProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
		return catalogFixture(), nil
	}}
	catalog := NewCatalogService(backend, time.Second)
	ctx := context.Background()

	all, err := catalog.ListProducts(ctx, domain.ProductQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(all))

	kitchen, err := catalog.ListProducts(ctx, domain.ProductQuery{Category: strPtr("kitchen")})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "4"}, ids(kitchen))

	fresh, err := catalog.ListProducts(ctx, domain.ProductQuery{Category: strPtr("kitchen"), IsNewRelease: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(fresh))

	page2, err := catalog.ListProducts(ctx, domain.ProductQuery{Page: intPtr(2), Limit: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4"}, ids(page2))

	beyond, err := catalog.ListProducts(ctx, domain.ProductQuery{Page: intPtr(9), Limit: intPtr(2)})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestListProductsTimeout(t *testing.T) {
	backend := &MockBackend{ListProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	catalog := NewCatalogService(backend, 20*time.Millisecond)

	_, err := catalog.ListProducts(context.Background(), domain.ProductQuery{})
	assert.ErrorIs(t, err, domain.ErrBackendTimeout)
}

func TestListProductsBackendError(t *testing.T) {
	backend := &MockBackend{ListProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
		return nil, domain.ErrBackendUnavailable
	}}
	catalog := NewCatalogService(backend, time.Second)

	_, err := catalog.ListProducts(context.Background(), domain.ProductQuery{})
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.False(t, errors.Is(err, domain.ErrBackendTimeout))
}

func TestGetProduct(t *testing.T) {
	catalog := NewCatalogService(&MockBackend{}, 0)

	product, err := catalog.GetProduct(context.Background(), "p9")
	require.NoError(t, err)
	assert.Equal(t, "p9", product.ProductID)

	_, err = catalog.GetProduct(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}
