package application

import (
	"context"
	"sync"

	"storefront/internal/domain"
)

// Mock implementations for testing

// MockStore implements output.PersistentStore for testing
type MockStore struct {
	mu      sync.Mutex
	entries map[string]string

	GetErr    error
	SetErr    error
	DeleteErr error

	// Captured values for assertions
	SetCalls    []string
	DeleteCalls []string
}

func NewMockStore() *MockStore {
	return &MockStore{entries: map[string]string{}}
}

func (m *MockStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *MockStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, key)
	if m.SetErr != nil {
		return m.SetErr
	}
	m.entries[key] = value
	return nil
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, key)
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.entries, key)
	return nil
}

func (m *MockStore) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	return value, ok
}

// MockNavigator implements output.Navigator for testing
type MockNavigator struct {
	mu    sync.Mutex
	Views []domain.View
}

func (m *MockNavigator) Navigate(view domain.View) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Views = append(m.Views, view)
}

func (m *MockNavigator) Last() domain.View {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Views) == 0 {
		return ""
	}
	return m.Views[len(m.Views)-1]
}

// MockBackend implements output.BackendClient for testing
type MockBackend struct {
	LoginFunc              func(ctx context.Context, request domain.LoginRequest) (*domain.TokenPair, error)
	RegisterFunc           func(ctx context.Context, request domain.RegisterRequest) (*domain.RegisterResponse, error)
	ProfileFunc            func(ctx context.Context, token string) (*domain.UserProfile, error)
	ListProductsFunc       func(ctx context.Context) ([]domain.Product, error)
	GetProductFunc         func(ctx context.Context, productID string) (*domain.Product, error)
	CurrentCartFunc        func(ctx context.Context, token string) (*domain.RemoteCart, error)
	AddItemFunc            func(ctx context.Context, token, productID string, quantity int) (*domain.RemoteCart, error)
	RemoveItemFunc         func(ctx context.Context, token string, itemID int64) (*domain.RemoteCart, error)
	UpdateItemQuantityFunc func(ctx context.Context, token string, itemID int64, quantity int) (*domain.RemoteCart, error)
	CheckoutFunc           func(ctx context.Context, token string, request domain.CheckoutRequest) (*domain.CheckoutResult, error)
	SummaryFunc            func(ctx context.Context) (*domain.Summary, error)
	OrderProductsFunc      func(ctx context.Context, orderID int) ([]domain.OrderLine, error)
	WishlistFunc           func(ctx context.Context, token string) ([]domain.WishlistItem, error)
	AddToWishlistFunc      func(ctx context.Context, token, productID string) error
	RemoveFromWishlistFunc func(ctx context.Context, token, productID string) error

	mu sync.Mutex
	// Captured values for assertions
	Calls            []string
	LastToken        string
	LastCheckout     *domain.CheckoutRequest
	LastLoginRequest *domain.LoginRequest
}

func (m *MockBackend) record(call, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
	if token != "" {
		m.LastToken = token
	}
}

func (m *MockBackend) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockBackend) Login(ctx context.Context, request domain.LoginRequest) (*domain.TokenPair, error) {
	m.record("Login", "")
	m.LastLoginRequest = &request
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, request)
	}
	return &domain.TokenPair{Access: "access-token"}, nil
}

func (m *MockBackend) Register(ctx context.Context, request domain.RegisterRequest) (*domain.RegisterResponse, error) {
	m.record("Register", "")
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, request)
	}
	return &domain.RegisterResponse{Message: "Registration successful!"}, nil
}

func (m *MockBackend) Profile(ctx context.Context, token string) (*domain.UserProfile, error) {
	m.record("Profile", token)
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, token)
	}
	return &domain.UserProfile{ID: 1, Username: "alice"}, nil
}

func (m *MockBackend) ListProducts(ctx context.Context) ([]domain.Product, error) {
	m.record("ListProducts", "")
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx)
	}
	return []domain.Product{}, nil
}

func (m *MockBackend) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	m.record("GetProduct", "")
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, productID)
	}
	return &domain.Product{ProductID: productID}, nil
}

func (m *MockBackend) CurrentCart(ctx context.Context, token string) (*domain.RemoteCart, error) {
	m.record("CurrentCart", token)
	if m.CurrentCartFunc != nil {
		return m.CurrentCartFunc(ctx, token)
	}
	return &domain.RemoteCart{ID: 1, Items: []domain.RemoteCartItem{}}, nil
}

func (m *MockBackend) AddItem(ctx context.Context, token, productID string, quantity int) (*domain.RemoteCart, error) {
	m.record("AddItem", token)
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, token, productID, quantity)
	}
	return &domain.RemoteCart{ID: 1, TotalItems: quantity, Items: []domain.RemoteCartItem{
		{ID: 10, Product: domain.Product{ProductID: productID}, Quantity: quantity},
	}}, nil
}

func (m *MockBackend) RemoveItem(ctx context.Context, token string, itemID int64) (*domain.RemoteCart, error) {
	m.record("RemoveItem", token)
	if m.RemoveItemFunc != nil {
		return m.RemoveItemFunc(ctx, token, itemID)
	}
	return &domain.RemoteCart{ID: 1, Items: []domain.RemoteCartItem{}}, nil
}

func (m *MockBackend) UpdateItemQuantity(ctx context.Context, token string, itemID int64, quantity int) (*domain.RemoteCart, error) {
	m.record("UpdateItemQuantity", token)
	if m.UpdateItemQuantityFunc != nil {
		return m.UpdateItemQuantityFunc(ctx, token, itemID, quantity)
	}
	return &domain.RemoteCart{ID: 1, TotalItems: quantity, Items: []domain.RemoteCartItem{
		{ID: itemID, Quantity: quantity},
	}}, nil
}

func (m *MockBackend) Checkout(ctx context.Context, token string, request domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	m.record("Checkout", token)
	m.LastCheckout = &request
	if m.CheckoutFunc != nil {
		return m.CheckoutFunc(ctx, token, request)
	}
	return &domain.CheckoutResult{Message: "Order placed"}, nil
}

func (m *MockBackend) Summary(ctx context.Context) (*domain.Summary, error) {
	m.record("Summary", "")
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx)
	}
	return &domain.Summary{}, nil
}

func (m *MockBackend) OrderProducts(ctx context.Context, orderID int) ([]domain.OrderLine, error) {
	m.record("OrderProducts", "")
	if m.OrderProductsFunc != nil {
		return m.OrderProductsFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *MockBackend) Wishlist(ctx context.Context, token string) ([]domain.WishlistItem, error) {
	m.record("Wishlist", token)
	if m.WishlistFunc != nil {
		return m.WishlistFunc(ctx, token)
	}
	return []domain.WishlistItem{}, nil
}

func (m *MockBackend) AddToWishlist(ctx context.Context, token, productID string) error {
	m.record("AddToWishlist", token)
	if m.AddToWishlistFunc != nil {
		return m.AddToWishlistFunc(ctx, token, productID)
	}
	return nil
}

func (m *MockBackend) RemoveFromWishlist(ctx context.Context, token, productID string) error {
	m.record("RemoveFromWishlist", token)
	if m.RemoveFromWishlistFunc != nil {
		return m.RemoveFromWishlistFunc(ctx, token, productID)
	}
	return nil
}
