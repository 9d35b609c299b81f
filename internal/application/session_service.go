package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// SessionHook is notified after a session transition
type SessionHook func(ctx context.Context)

// SessionService struct - Application service owning the visitor's credential
type SessionService struct {
	store     output.PersistentStore
	auth      output.AuthClient
	navigator output.Navigator

	mu            sync.RWMutex
	authenticated bool
	profile       *domain.UserProfile
	onLogin       []SessionHook
	onLogout      []SessionHook
}

// NewSessionService func - Creates new session service.
// The persisted token is read once to derive the authenticated state.
func NewSessionService(ctx context.Context, store output.PersistentStore, auth output.AuthClient, navigator output.Navigator) *SessionService {
	s := &SessionService{
		store:     store,
		auth:      auth,
		navigator: navigator,
	}
	_, s.authenticated = s.GetToken(ctx)
	return s
}

// OnLogin registers a hook run after every successful Login
func (s *SessionService) OnLogin(hook SessionHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogin = append(s.onLogin, hook)
}

// OnLogout registers a hook run after every Logout
func (s *SessionService) OnLogout(hook SessionHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, hook)
}

// Login func - Use case: persist token and mark the session authenticated
func (s *SessionService) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: empty token", domain.ErrInvalidRequest)
	}

	if err := s.store.Set(ctx, domain.StorageKeyAccessToken, token); err != nil {
		logrus.Errorln(err)
		return fmt.Errorf("failed to persist token: %w", err)
	}

	s.mu.Lock()
	s.authenticated = true
	s.profile = nil
	hooks := append([]SessionHook(nil), s.onLogin...)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook(ctx)
	}
	return nil
}

// Authenticate func - Use case: exchange credentials for tokens, then Login
func (s *SessionService) Authenticate(ctx context.Context, username, password string) error {
	tokens, err := s.auth.Login(ctx, domain.LoginRequest{Username: username, Password: password})
	if err != nil {
		logrus.Errorf("Login failed for user %s: %v", username, err)
		return err
	}

	if tokens.Refresh != "" {
		if err := s.store.Set(ctx, domain.StorageKeyRefreshToken, tokens.Refresh); err != nil {
			logrus.Errorln(err)
			return fmt.Errorf("failed to persist refresh token: %w", err)
		}
	}

	return s.Login(ctx, tokens.Access)
}

// Logout func - Use case: drop credentials and cached state, go to login view.
// The session stays authenticated only if the token could not be deleted.
func (s *SessionService) Logout(ctx context.Context) error {
	var errs []error
	for _, key := range []string{domain.StorageKeyAccessToken, domain.StorageKeyRefreshToken} {
		if err := s.store.Delete(ctx, key); err != nil {
			logrus.Errorf("Failed to delete %s: %v", key, err)
			errs = append(errs, err)
		}
	}
	_, stillStored := s.GetToken(ctx)

	s.mu.Lock()
	s.authenticated = stillStored
	s.profile = nil
	hooks := append([]SessionHook(nil), s.onLogout...)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook(ctx)
	}

	if s.navigator != nil {
		s.navigator.Navigate(domain.ViewLogin)
	}

	return errors.Join(errs...)
}

// GetToken func - Pure read of the persisted token
func (s *SessionService) GetToken(ctx context.Context) (string, bool) {
	token, found, err := s.store.Get(ctx, domain.StorageKeyAccessToken)
	if err != nil {
		logrus.Errorf("Failed to read token: %v", err)
		return "", false
	}
	if !found || token == "" {
		return "", false
	}
	return token, true
}

// IsAuthenticated func
func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Profile returns the last profile fetched by FetchUserData, or nil
func (s *SessionService) Profile() *domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// FetchUserData func - Use case: fetch the customer profile.
// Every failure yields nil; a 401 also logs the visitor out.
func (s *SessionService) FetchUserData(ctx context.Context) *domain.UserProfile {
	var profile *domain.UserProfile
	err := s.Do(ctx, func(ctx context.Context, token string) error {
		p, err := s.auth.Profile(ctx, token)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrLoginRequired) {
			logrus.Warnf("Failed to fetch user data: %v", err)
		}
		return nil
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	return profile
}

// Do runs an authenticated backend call with the current token.
// ErrUnauthorized from call logs the visitor out once; nothing is retried.
func (s *SessionService) Do(ctx context.Context, call func(ctx context.Context, token string) error) error {
	token, ok := s.GetToken(ctx)
	if !ok {
		return domain.ErrLoginRequired
	}

	err := call(ctx, token)
	if errors.Is(err, domain.ErrUnauthorized) {
		logrus.Warnf("Backend rejected session token, logging out: %v", err)
		if logoutErr := s.Logout(ctx); logoutErr != nil {
			logrus.Errorln(logoutErr)
		}
	}
	return err
}
