package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain"

	"github.com/google/uuid"
)

// MockVisitorStore implements output.VisitorStore for testing
type MockVisitorStore struct {
	visitors map[string]*domain.Visitor
	GetErr   error
}

func (m *MockVisitorStore) GetVisitor(visitorID string) (*domain.Visitor, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.visitors[visitorID], nil
}

func (m *MockVisitorStore) PutVisitor(visitor *domain.Visitor) error {
	m.visitors[visitor.ID] = visitor
	return nil
}

func (m *MockVisitorStore) DeleteVisitor(visitorID string) error {
	delete(m.visitors, visitorID)
	return nil
}

func newTestRegistry() (*VisitorRegistry, *MockVisitorStore, *MockStore) {
	visitors := &MockVisitorStore{visitors: map[string]*domain.Visitor{}}
	store := NewMockStore()
	return NewVisitorRegistry(visitors, store, &MockBackend{}, "storefront", 30*time.Minute), visitors, store
}

// TestResolveAssignsVisitorID tests that missing or malformed IDs get a fresh uuid
func TestResolveAssignsVisitorID(t *testing.T) {
	registry, visitors, _ := newTestRegistry()

	for _, id := range []string{"", "not-a-uuid"} {
		storefront, err := registry.Resolve(context.Background(), id)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", id, err)
		}
		if _, err := uuid.Parse(storefront.VisitorID); err != nil {
			t.Errorf("expected uuid visitor id, got %q", storefront.VisitorID)
		}
		if visitors.visitors[storefront.VisitorID] == nil {
			t.Errorf("expected visitor %s to be stored", storefront.VisitorID)
		}
	}
}

// TestResolveReturnsSameStorefront tests that a known visitor keeps its bundle
func TestResolveReturnsSameStorefront(t *testing.T) {
	ctx := context.Background()
	registry, _, _ := newTestRegistry()

	first, _ := registry.Resolve(ctx, "")
	second, err := registry.Resolve(ctx, first.VisitorID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if first != second {
		t.Error("expected the same storefront for the same visitor")
	}
}

// TestResolveScopesStorage tests that visitors never share a cart
func TestResolveScopesStorage(t *testing.T) {
	ctx := context.Background()
	registry, _, store := newTestRegistry()

	alice, _ := registry.Resolve(ctx, "")
	bob, _ := registry.Resolve(ctx, "")

	alice.Cart.AddToCart(ctx, product("p1", 10))

	if len(bob.Cart.Items()) != 0 {
		t.Error("expected bob's cart to stay empty")
	}
	if _, ok := store.Value("storefront:" + alice.VisitorID + ":" + domain.StorageKeyCart); !ok {
		t.Error("expected cart stored under the visitor prefix")
	}
}

// TestResolveRebuildsFromStorage tests that a forgotten visitor recovers cart and session
func TestResolveRebuildsFromStorage(t *testing.T) {
	ctx := context.Background()
	registry, _, _ := newTestRegistry()

	first, _ := registry.Resolve(ctx, "")
	first.Cart.AddToCart(ctx, product("p1", 10))
	first.Session.Login(ctx, "tok")

	if err := registry.Forget(first.VisitorID); err != nil {
		t.Fatalf("Forget: %v", err)
	}

	second, err := registry.Resolve(ctx, first.VisitorID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if second == first {
		t.Fatal("expected a rebuilt storefront")
	}
	if len(second.Cart.Items()) != 1 {
		t.Errorf("expected cart restored, got %+v", second.Cart.Items())
	}
	if !second.Session.IsAuthenticated() {
		t.Error("expected session restored")
	}
}

// TestResolveVisitorStoreError tests error propagation
func TestResolveVisitorStoreError(t *testing.T) {
	registry, visitors, _ := newTestRegistry()
	visitors.GetErr = errors.New("store offline")

	if _, err := registry.Resolve(context.Background(), uuid.NewString()); err == nil {
		t.Error("expected error")
	}
}

// TestNavigationRecorderTake tests that a pending view is consumed once
func TestNavigationRecorderTake(t *testing.T) {
	recorder := &NavigationRecorder{}
	if recorder.Take() != "" {
		t.Error("expected no pending view")
	}

	recorder.Navigate(domain.ViewLogin)
	if view := recorder.Take(); view != domain.ViewLogin {
		t.Errorf("expected %s, got %s", domain.ViewLogin, view)
	}
	if recorder.Take() != "" {
		t.Error("expected pending view cleared")
	}
}

// TestScopedStorePrefixesKeys tests ScopedStore
func TestScopedStorePrefixesKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMockStore()
	scoped := NewScopedStore(store, "ns", "v1")

	scoped.Set(ctx, "k", "value")
	if value, ok := store.Value("ns:v1:k"); !ok || value != "value" {
		t.Errorf("expected prefixed key, got %q %v", value, ok)
	}
	if value, found, _ := scoped.Get(ctx, "k"); !found || value != "value" {
		t.Errorf("expected scoped read, got %q %v", value, found)
	}
	scoped.Delete(ctx, "k")
	if _, found, _ := scoped.Get(ctx, "k"); found {
		t.Error("expected key deleted")
	}
}

// TestAccountRegisterSurfacesFieldErrors tests AccountService
func TestAccountRegisterSurfacesFieldErrors(t *testing.T) {
	backend := &MockBackend{
		RegisterFunc: func(ctx context.Context, request domain.RegisterRequest) (*domain.RegisterResponse, error) {
			return nil, &domain.ValidationError{StatusCode: 400, Fields: map[string][]string{"email": {"Enter a valid email address."}}}
		},
	}
	account := NewAccountService(backend)

	_, err := account.Register(context.Background(), domain.RegisterRequest{Username: "alice"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Fields["email"][0] != "Enter a valid email address." {
		t.Errorf("unexpected fields: %v", verr.Fields)
	}
}
