package http

import "storefront/internal/domain"

type (
	// LoginRequest struct - credentials posted by the login view
	LoginRequest struct {
		Username string `json:"username" validate:"required" form:"username"`
		Password string `json:"password" validate:"required" form:"password"`
	}

	// TokenRequest struct - an already issued access token
	TokenRequest struct {
		Token string `json:"token" validate:"required" form:"token"`
	}

	// RegisterRequest struct - HTTP request DTO for sign up
	RegisterRequest struct {
		FirstName       string `json:"first_name" validate:"required,max=150"`
		LastName        string `json:"last_name" validate:"required,max=150"`
		Username        string `json:"username" validate:"required,max=150"`
		Email           string `json:"email" validate:"required,email"`
		PhoneNumber     string `json:"phone_number" validate:"omitempty,max=20"`
		Password        string `json:"password" validate:"required,min=8"`
		ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	}

	// QueryProductRequest struct - HTTP query request DTO for the catalog
	QueryProductRequest struct {
		Category     *string `json:"category" form:"category" query:"category"`
		IsNewRelease *bool   `json:"is_new_release" form:"is_new_release" query:"is_new_release"`
		IsTrending   *bool   `json:"is_trending" form:"is_trending" query:"is_trending"`

		Limit *int `json:"limit,omitempty" validate:"omitempty,min=1,max=100" form:"limit" query:"limit"`
		Page  *int `json:"page,omitempty" validate:"omitempty,min=1" form:"page" query:"page"`
	}

	// CartItemRequest struct - adds one unit of a product to the local cart
	CartItemRequest struct {
		ProductID string `json:"product_id" validate:"required"`
	}

	// QuantityRequest struct - overwrites a line quantity.
	// The local cart stores any value; callers decide what is sensible.
	QuantityRequest struct {
		Quantity *int `json:"quantity" validate:"required"`
	}

	// RemoteCartItemRequest struct - adds a product to the server cart
	RemoteCartItemRequest struct {
		ProductID string `json:"product_id" validate:"required"`
		Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	}

	// QuoteRequest struct
	QuoteRequest struct {
		ShippingMethod string `json:"shipping_method" validate:"omitempty,oneof=sd fd pd" query:"shipping_method"`
	}

	// CheckoutRequest struct - customer and delivery details from the checkout form
	CheckoutRequest struct {
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		Email          string `json:"email"`
		PhoneNumber    string `json:"phone_number"`
		Address        string `json:"address"`
		Province       string `json:"province"`
		District       string `json:"district"`
		SubDistrict    string `json:"sub_district"`
		PostalCode     string `json:"postal_code"`
		Note           string `json:"note"`
		PaymentMethod  string `json:"payment_method"`
		ShippingMethod string `json:"shipping_method"`
	}
)

func (r QueryProductRequest) toDomain() domain.ProductQuery {
	return domain.ProductQuery{
		Page:         r.Page,
		Limit:        r.Limit,
		Category:     r.Category,
		IsNewRelease: r.IsNewRelease,
		IsTrending:   r.IsTrending,
	}
}

func (r RegisterRequest) toDomain() domain.RegisterRequest {
	return domain.RegisterRequest{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Username:        r.Username,
		Email:           r.Email,
		PhoneNumber:     r.PhoneNumber,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

func (r CheckoutRequest) toDomain() domain.CustomerInfo {
	return domain.CustomerInfo{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		Address:        r.Address,
		Province:       r.Province,
		District:       r.District,
		SubDistrict:    r.SubDistrict,
		PostalCode:     r.PostalCode,
		Note:           r.Note,
		PaymentMethod:  r.PaymentMethod,
		ShippingMethod: domain.ShippingMethod(r.ShippingMethod),
	}
}
