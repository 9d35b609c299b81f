package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

// Checkout posts the order to /api/orders/checkout/
func (a *ClientAdapter) Checkout(ctx context.Context, token string, order domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	req, err := jsonRequest(http.MethodPost, "/api/orders/checkout/", token, order)
	if err != nil {
		return nil, err
	}

	var payload map[string]interface{}
	if err := a.do(ctx, req, &payload); err != nil {
		return nil, err
	}

	result := &domain.CheckoutResult{Raw: payload}
	if message, ok := payload["message"].(string); ok {
		result.Message = message
	}
	if id, ok := payload["order_id"].(float64); ok {
		orderID := int64(id)
		result.OrderID = &orderID
	}

	logrus.Infof("Checkout accepted with %d items", len(order.Items))

	return result, nil
}

// Summary fetches /api/summarize
func (a *ClientAdapter) Summary(ctx context.Context) (*domain.Summary, error) {
	var summary domain.Summary
	if err := a.do(ctx, request{method: http.MethodGet, path: "/api/summarize"}, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// OrderProducts fetches /orders/products/{id}.
// The body is either a bare array of lines or {"data": [...]}.
func (a *ClientAdapter) OrderProducts(ctx context.Context, orderID int) ([]domain.OrderLine, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/orders/products/%d", orderID)
	if err := a.do(ctx, request{method: http.MethodGet, path: path}, &raw); err != nil {
		return nil, err
	}

	var lines []domain.OrderLine
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &lines); err != nil {
			return nil, fmt.Errorf("failed to parse order %d: %w", orderID, err)
		}
		return lines, nil
	}

	var wrapped struct {
		Data []domain.OrderLine `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse order %d: %w", orderID, err)
	}
	return wrapped.Data, nil
}
