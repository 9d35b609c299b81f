package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Backend error types

var (
	// ErrUnauthorized indicates the backend rejected the bearer credential (401)
	ErrUnauthorized = errors.New("backend rejected credential")

	// ErrBackendUnavailable indicates a transport failure or 5xx from the backend
	ErrBackendUnavailable = errors.New("backend service unavailable")

	// ErrBackendTimeout indicates a request to the backend timed out
	ErrBackendTimeout = errors.New("backend request timeout")

	// ErrInvalidRequest indicates an invalid request was made (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound indicates the backend has no such resource (404)
	ErrNotFound = errors.New("resource not found")

	// ErrLoginRequired indicates the action needs a session and none is present
	ErrLoginRequired = errors.New("login required")
)

// ValidationError carries a structured 4xx body so the views layer can show it verbatim
type ValidationError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match ErrInvalidRequest
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}
