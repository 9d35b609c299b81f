package http

import (
	"errors"
	"net/http"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Unauthorized response
	Unauthorized = Status{Code: http.StatusUnauthorized, Message: []string{"Sorry, We are not able to process your request. Please try again"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Data not found"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
	// BadGateway response
	BadGateway = Status{Code: http.StatusBadGateway, Message: []string{"Sorry, Backend service is unavailable"}}
	// GatewayTimeout response
	GatewayTimeout = Status{Code: http.StatusGatewayTimeout, Message: []string{"Sorry, Backend service did not respond in time"}}
)

// ResponseBody struct - Generic HTTP response wrapper.
// Redirect names the view the visitor should be sent to, when any.
type ResponseBody struct {
	Status   Status              `json:"status,omitempty"`
	Data     interface{}         `json:"data,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
	Redirect string              `json:"redirect,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// SessionResponse struct
	SessionResponse struct {
		Authenticated bool                `json:"authenticated"`
		Profile       *domain.UserProfile `json:"profile,omitempty"`
	}

	// CartResponse struct - the local cart with derived totals
	CartResponse struct {
		Items      domain.Cart     `json:"items"`
		Total      decimal.Decimal `json:"total"`
		TotalItems int             `json:"total_items"`
	}

	// RemoteCartResponse struct
	RemoteCartResponse struct {
		Cart  *domain.RemoteCart `json:"cart"`
		State domain.SyncState   `json:"state"`
	}

	// FavoriteResponse struct
	FavoriteResponse struct {
		ProductID string `json:"product_id"`
		Favorite  bool   `json:"favorite"`
	}
)

func newCartResponse(cart domain.Cart) CartResponse {
	return CartResponse{
		Items:      cart,
		Total:      cart.Total(),
		TotalItems: cart.TotalItems(),
	}
}

// statusFor maps an application error onto a response status
func statusFor(err error) Status {
	var status Status
	switch {
	case errors.Is(err, domain.ErrLoginRequired), errors.Is(err, domain.ErrUnauthorized):
		status = Unauthorized
	case errors.Is(err, domain.ErrNotFound):
		status = NotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		status = BadRequest
	case errors.Is(err, domain.ErrBackendTimeout):
		status = GatewayTimeout
	case errors.Is(err, domain.ErrBackendUnavailable):
		status = BadGateway
	default:
		return InternalServerError
	}
	status.Message = []string{err.Error()}
	return status
}
