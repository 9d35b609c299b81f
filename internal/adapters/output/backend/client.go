package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/configs"
	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure ClientAdapter implements BackendClient interface
var _ output.BackendClient = (*ClientAdapter)(nil)

// ClientAdapter struct - Output adapter for the storefront backend REST API.
// timeout bounds connection setup only; calls are otherwise limited by their context.
type ClientAdapter struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// NewClientAdapter func - Creates new backend client adapter
func NewClientAdapter(config configs.Backend) (*ClientAdapter, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://127.0.0.1:3344"
	}

	// Remove trailing slash if present
	baseURL = strings.TrimSuffix(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   timeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	adapter := &ClientAdapter{
		httpClient: httpClient,
		baseURL:    baseURL,
		timeout:    timeout,
	}

	logrus.Infof("Backend client adapter initialized with base URL: %s, dial timeout: %v", baseURL, timeout)

	return adapter, nil
}

// request describes one backend call
type request struct {
	method      string
	path        string
	token       string
	body        io.Reader
	contentType string
}

// jsonRequest builds a request carrying a JSON body
func jsonRequest(method, path, token string, payload interface{}) (request, error) {
	req := request{method: method, path: path, token: token}
	if payload == nil {
		return req, nil
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return req, fmt.Errorf("failed to marshal request: %w", err)
	}
	req.body = bytes.NewReader(bodyBytes)
	req.contentType = "application/json"
	return req, nil
}

// do executes a single backend call and decodes a 2xx JSON body into out.
// Nothing is retried.
func (a *ClientAdapter) do(ctx context.Context, r request, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, r.method, a.baseURL+r.path, r.body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if r.contentType != "" {
		httpReq.Header.Set("Content-Type", r.contentType)
	} else {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	if r.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return a.classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return classifyStatus(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", r.path, err)
	}
	return nil
}

// classifyTransportError maps a transport failure onto the domain taxonomy
func (a *ClientAdapter) classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrBackendTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrBackendTimeout, err)
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("request cancelled: %w", err)
	}

	return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
}

// classifyStatus maps a non-2xx response onto the domain taxonomy
func classifyStatus(statusCode int, body []byte) error {
	switch {
	case statusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: status %d - %s", domain.ErrUnauthorized, statusCode, strings.TrimSpace(string(body)))
	case statusCode == http.StatusNotFound:
		return fmt.Errorf("%w: status %d - %s", domain.ErrNotFound, statusCode, strings.TrimSpace(string(body)))
	case statusCode >= 400 && statusCode < 500:
		return decodeValidationError(statusCode, body)
	default:
		return fmt.Errorf("%w: status %d - %s", domain.ErrBackendUnavailable, statusCode, strings.TrimSpace(string(body)))
	}
}

// decodeValidationError turns a 4xx body into a field map.
// DRF sends either {"field": ["msg", ...]} or {"error": "msg"}.
func decodeValidationError(statusCode int, body []byte) error {
	verr := &domain.ValidationError{
		StatusCode: statusCode,
		Fields:     map[string][]string{},
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		verr.Message = strings.TrimSpace(string(body))
		if verr.Message == "" {
			verr.Message = http.StatusText(statusCode)
		}
		return verr
	}

	for key, value := range payload {
		switch v := value.(type) {
		case string:
			if key == "error" || key == "detail" || key == "message" {
				verr.Message = v
				continue
			}
			verr.Fields[key] = []string{v}
		case []interface{}:
			for _, item := range v {
				verr.Fields[key] = append(verr.Fields[key], fmt.Sprint(item))
			}
		default:
			verr.Fields[key] = []string{fmt.Sprint(v)}
		}
	}
	return verr
}
