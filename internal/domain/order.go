package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingMethod identifies a delivery option at checkout
type ShippingMethod string

const (
	// ShippingStandard - standard delivery
	ShippingStandard ShippingMethod = "sd"
	// ShippingFast - fast delivery
	ShippingFast ShippingMethod = "fd"
	// ShippingPremium - premium delivery
	ShippingPremium ShippingMethod = "pd"
)

// Fee returns the shipping fee; unknown methods cost the standard fee
func (m ShippingMethod) Fee() decimal.Decimal {
	switch m {
	case ShippingFast:
		return decimal.NewFromInt(80)
	case ShippingPremium:
		return decimal.NewFromInt(100)
	default:
		return decimal.NewFromInt(50)
	}
}

// CheckoutQuote is the price breakdown shown before placing an order
type CheckoutQuote struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	ShippingMethod ShippingMethod  `json:"shipping_method"`
	ShippingFee    decimal.Decimal `json:"shipping_fee"`
	Total          decimal.Decimal `json:"total"`
}

// CustomerInfo holds the buyer and address fields of the checkout form
type CustomerInfo struct {
	FirstName      string         `json:"first_name" validate:"required"`
	LastName       string         `json:"last_name" validate:"required"`
	Email          string         `json:"email" validate:"required,email"`
	PhoneNumber    string         `json:"phone_number" validate:"required"`
	Address        string         `json:"address" validate:"required"`
	Province       string         `json:"province" validate:"required"`
	District       string         `json:"district" validate:"required"`
	SubDistrict    string         `json:"sub_district"`
	PostalCode     string         `json:"postal_code" validate:"required"`
	Note           string         `json:"note"`
	PaymentMethod  string         `json:"payment_method" validate:"required"`
	ShippingMethod ShippingMethod `json:"shipping_method" validate:"omitempty,oneof=sd fd pd"`
}

// OrderItem is one product/quantity pair sent to checkout
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest is the payload posted to the orders endpoint
type CheckoutRequest struct {
	CustomerInfo
	Items []OrderItem `json:"items"`
}

// CheckoutResult is the backend acknowledgement of a placed order
type CheckoutResult struct {
	Message string         `json:"message,omitempty"`
	OrderID *int64         `json:"order_id,omitempty"`
	Raw     map[string]any `json:"-"`
}

// Summary is the aggregate served by the summarize endpoint
type Summary struct {
	TotalUsers    int `json:"total_users"`
	TotalProducts int `json:"total_products"`
	TotalOrders   int `json:"total_orders"`
}

// OrderLine is one product row of a placed order
type OrderLine struct {
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderDigest is the dashboard row for one recent order
type OrderDigest struct {
	OrderID  int       `json:"order_id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Quantity int       `json:"quantity"`
}

// Dashboard is the admin overview
type Dashboard struct {
	EcoPointsTotal decimal.Decimal `json:"eco_points_total"`
	RevenueTotal   decimal.Decimal `json:"revenue_total"`
	UsersCount     int             `json:"users_count"`
	OrdersCount    int             `json:"orders_count"`
	OrdersToday    int             `json:"orders_today"`
	LatestOrders   []OrderDigest   `json:"latest_orders"`
}
