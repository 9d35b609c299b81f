package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

// Token field aliases accepted from the login endpoint, in priority order
var (
	accessTokenFields  = []string{"access", "access_token", "token", "accessToken"}
	refreshTokenFields = []string{"refresh", "refresh_token", "refreshToken"}
)

// Login posts form-encoded credentials to /api/login/
func (a *ClientAdapter) Login(ctx context.Context, credentials domain.LoginRequest) (*domain.TokenPair, error) {
	form := url.Values{}
	form.Set("username", credentials.Username)
	form.Set("password", credentials.Password)

	var payload map[string]interface{}
	err := a.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/login/",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, &payload)
	if err != nil {
		return nil, err
	}

	tokens := parseTokenPair(payload)
	if tokens.Access == "" {
		logrus.Errorf("Token format not recognized in login response: %v", keysOf(payload))
		return nil, errors.New("access token not found in login response")
	}

	logrus.Infof("Login succeeded for user: %s", credentials.Username)

	return &tokens, nil
}

// Register posts a JSON registration payload to /api/register/
func (a *ClientAdapter) Register(ctx context.Context, registration domain.RegisterRequest) (*domain.RegisterResponse, error) {
	req, err := jsonRequest(http.MethodPost, "/api/register/", "", registration)
	if err != nil {
		return nil, err
	}

	var response domain.RegisterResponse
	if err := a.do(ctx, req, &response); err != nil {
		return nil, err
	}
	if response.Message == "" {
		response.Message = "Registration successful!"
	}
	return &response, nil
}

// Profile fetches /api/profile/ for the bearer of token
func (a *ClientAdapter) Profile(ctx context.Context, token string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := a.do(ctx, request{method: http.MethodGet, path: "/api/profile/", token: token}, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// parseTokenPair picks the first non-empty alias for each token
func parseTokenPair(payload map[string]interface{}) domain.TokenPair {
	return domain.TokenPair{
		Access:  firstString(payload, accessTokenFields),
		Refresh: firstString(payload, refreshTokenFields),
	}
}

func firstString(payload map[string]interface{}, fields []string) string {
	for _, field := range fields {
		if value, ok := payload[field].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

func keysOf(payload map[string]interface{}) []string {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	return keys
}
