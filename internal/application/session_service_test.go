package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"storefront/internal/domain"
)

func newTestSession(t *testing.T) (*SessionService, *MockStore, *MockBackend, *MockNavigator) {
	t.Helper()
	store := NewMockStore()
	backend := &MockBackend{}
	navigator := &MockNavigator{}
	return NewSessionService(context.Background(), store, backend, navigator), store, backend, navigator
}

// TestNewSessionServiceDerivesState tests that a persisted token authenticates the session
func TestNewSessionServiceDerivesState(t *testing.T) {
	ctx := context.Background()
	store := NewMockStore()

	if NewSessionService(ctx, store, &MockBackend{}, nil).IsAuthenticated() {
		t.Error("expected unauthenticated session without token")
	}

	store.Set(ctx, domain.StorageKeyAccessToken, "tok")
	if !NewSessionService(ctx, store, &MockBackend{}, nil).IsAuthenticated() {
		t.Error("expected authenticated session with persisted token")
	}
}

// TestLoginPersistsTokenAndRunsHooks tests Login
func TestLoginPersistsTokenAndRunsHooks(t *testing.T) {
	ctx := context.Background()
	session, store, _, _ := newTestSession(t)

	hookCalls := 0
	session.OnLogin(func(ctx context.Context) { hookCalls++ })

	if err := session.Login(ctx, "tok-1"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if value, _ := store.Value(domain.StorageKeyAccessToken); value != "tok-1" {
		t.Errorf("expected persisted token tok-1, got %q", value)
	}
	if !session.IsAuthenticated() {
		t.Error("expected authenticated session")
	}
	if token, ok := session.GetToken(ctx); !ok || token != "tok-1" {
		t.Errorf("expected GetToken tok-1, got %q %v", token, ok)
	}
	if hookCalls != 1 {
		t.Errorf("expected login hook once, got %d", hookCalls)
	}
}

// TestLoginRejectsEmptyToken tests Login input validation
func TestLoginRejectsEmptyToken(t *testing.T) {
	session, store, _, _ := newTestSession(t)

	err := session.Login(context.Background(), "  ")
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
	if len(store.SetCalls) != 0 {
		t.Error("expected nothing persisted")
	}
}

// TestLogoutClearsTokenAndNavigates tests Logout
func TestLogoutClearsTokenAndNavigates(t *testing.T) {
	ctx := context.Background()
	session, store, _, navigator := newTestSession(t)
	store.Set(ctx, domain.StorageKeyRefreshToken, "refresh")
	session.Login(ctx, "tok-1")

	logoutCalls := 0
	session.OnLogout(func(ctx context.Context) { logoutCalls++ })

	if err := session.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, ok := session.GetToken(ctx); ok {
		t.Error("expected no token after logout")
	}
	if _, ok := store.Value(domain.StorageKeyRefreshToken); ok {
		t.Error("expected refresh token removed")
	}
	if session.IsAuthenticated() {
		t.Error("expected unauthenticated session")
	}
	if navigator.Last() != domain.ViewLogin {
		t.Errorf("expected navigation to login, got %q", navigator.Last())
	}
	if logoutCalls != 1 {
		t.Errorf("expected logout hook once, got %d", logoutCalls)
	}
}

// TestLogoutDeleteFailureKeepsStateConsistent tests that IsAuthenticated follows the stored token
func TestLogoutDeleteFailureKeepsStateConsistent(t *testing.T) {
	ctx := context.Background()
	session, store, _, _ := newTestSession(t)
	session.Login(ctx, "tok-1")
	store.DeleteErr = errors.New("storage offline")

	if err := session.Logout(ctx); err == nil {
		t.Fatal("expected delete failure to be returned")
	}

	_, hasToken := session.GetToken(ctx)
	if !hasToken {
		t.Fatal("expected token to survive a failed delete")
	}
	if session.IsAuthenticated() != hasToken {
		t.Errorf("IsAuthenticated=%v disagrees with GetToken=%v", session.IsAuthenticated(), hasToken)
	}
}

// TestGetTokenIsPureRead tests that reads never write
func TestGetTokenIsPureRead(t *testing.T) {
	ctx := context.Background()
	session, store, _, _ := newTestSession(t)

	session.GetToken(ctx)
	session.GetToken(ctx)

	if len(store.SetCalls) != 0 || len(store.DeleteCalls) != 0 {
		t.Errorf("expected no writes, got set=%v delete=%v", store.SetCalls, store.DeleteCalls)
	}
}

// TestGetTokenStorageFailure tests that an unreadable store reports no token
func TestGetTokenStorageFailure(t *testing.T) {
	session, store, _, _ := newTestSession(t)
	store.GetErr = errors.New("storage offline")

	if _, ok := session.GetToken(context.Background()); ok {
		t.Error("expected absent token")
	}
}

// TestAuthenticateStoresBothTokens tests the username/password flow
func TestAuthenticateStoresBothTokens(t *testing.T) {
	ctx := context.Background()
	session, store, backend, _ := newTestSession(t)
	backend.LoginFunc = func(ctx context.Context, request domain.LoginRequest) (*domain.TokenPair, error) {
		return &domain.TokenPair{Access: "acc", Refresh: "ref"}, nil
	}

	if err := session.Authenticate(ctx, "alice", "secret"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}

	if backend.LastLoginRequest == nil || backend.LastLoginRequest.Username != "alice" {
		t.Errorf("expected credentials forwarded, got %+v", backend.LastLoginRequest)
	}
	if value, _ := store.Value(domain.StorageKeyAccessToken); value != "acc" {
		t.Errorf("expected access token stored, got %q", value)
	}
	if value, _ := store.Value(domain.StorageKeyRefreshToken); value != "ref" {
		t.Errorf("expected refresh token stored, got %q", value)
	}
}

// TestAuthenticateFailureLeavesSession tests rejected credentials
func TestAuthenticateFailureLeavesSession(t *testing.T) {
	ctx := context.Background()
	session, _, backend, _ := newTestSession(t)
	backend.LoginFunc = func(ctx context.Context, request domain.LoginRequest) (*domain.TokenPair, error) {
		return nil, fmt.Errorf("%w: bad credentials", domain.ErrUnauthorized)
	}

	err := session.Authenticate(ctx, "alice", "wrong")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
	if session.IsAuthenticated() {
		t.Error("expected unauthenticated session")
	}
}

// TestFetchUserDataSendsToken tests the happy path and profile cache
func TestFetchUserDataSendsToken(t *testing.T) {
	ctx := context.Background()
	session, _, backend, _ := newTestSession(t)
	session.Login(ctx, "tok-1")

	profile := session.FetchUserData(ctx)
	if profile == nil || profile.Username != "alice" {
		t.Fatalf("expected profile, got %+v", profile)
	}
	if backend.LastToken != "tok-1" {
		t.Errorf("expected token tok-1 sent, got %q", backend.LastToken)
	}
	if session.Profile() != profile {
		t.Error("expected profile cached")
	}
}

// TestFetchUserDataUnauthorizedLogsOut tests the single de-authentication policy
func TestFetchUserDataUnauthorizedLogsOut(t *testing.T) {
	ctx := context.Background()
	session, _, backend, navigator := newTestSession(t)
	session.Login(ctx, "expired")
	backend.ProfileFunc = func(ctx context.Context, token string) (*domain.UserProfile, error) {
		return nil, fmt.Errorf("%w: token expired", domain.ErrUnauthorized)
	}

	if profile := session.FetchUserData(ctx); profile != nil {
		t.Errorf("expected nil profile, got %+v", profile)
	}
	if _, ok := session.GetToken(ctx); ok {
		t.Error("expected token cleared")
	}
	if navigator.Last() != domain.ViewLogin {
		t.Errorf("expected navigation to login, got %q", navigator.Last())
	}
	if backend.CallCount() != 1 {
		t.Errorf("expected no retry, got calls %v", backend.Calls)
	}
}

// TestFetchUserDataNetworkFailureKeepsSession tests transport failures
func TestFetchUserDataNetworkFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	session, _, backend, navigator := newTestSession(t)
	session.Login(ctx, "tok-1")
	backend.ProfileFunc = func(ctx context.Context, token string) (*domain.UserProfile, error) {
		return nil, fmt.Errorf("%w: connection refused", domain.ErrBackendUnavailable)
	}

	if profile := session.FetchUserData(ctx); profile != nil {
		t.Errorf("expected nil profile, got %+v", profile)
	}
	if _, ok := session.GetToken(ctx); !ok {
		t.Error("expected token kept")
	}
	if len(navigator.Views) != 0 {
		t.Errorf("expected no navigation, got %v", navigator.Views)
	}
}

// TestFetchUserDataWithoutSession tests that no call is made without a token
func TestFetchUserDataWithoutSession(t *testing.T) {
	session, _, backend, _ := newTestSession(t)

	if profile := session.FetchUserData(context.Background()); profile != nil {
		t.Errorf("expected nil profile, got %+v", profile)
	}
	if backend.CallCount() != 0 {
		t.Errorf("expected no backend call, got %v", backend.Calls)
	}
}
