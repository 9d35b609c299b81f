package application

import (
	"context"
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/internal/ports/output"
	"storefront/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure CheckoutService implements the input port
var _ input.CheckoutService = (*CheckoutService)(nil)

// CheckoutService struct - Application service placing orders from the local cart
type CheckoutService struct {
	session   *SessionService
	cart      input.CartService
	orders    output.OrderClient
	navigator output.Navigator
	validator validator.Validator
}

// NewCheckoutService func - Creates new checkout service
func NewCheckoutService(session *SessionService, cart input.CartService, orders output.OrderClient, navigator output.Navigator) *CheckoutService {
	return &CheckoutService{
		session:   session,
		cart:      cart,
		orders:    orders,
		navigator: navigator,
		validator: validator.New(),
	}
}

// Quote func - Use case: price the cart with a shipping method
func (s *CheckoutService) Quote(method domain.ShippingMethod) domain.CheckoutQuote {
	if method == "" {
		method = domain.ShippingStandard
	}
	subtotal := s.cart.Total()
	fee := method.Fee()
	return domain.CheckoutQuote{
		Subtotal:       subtotal,
		ShippingMethod: method,
		ShippingFee:    fee,
		Total:          subtotal.Add(fee),
	}
}

// Checkout func - Use case: submit the cart as an order and clear it on success
func (s *CheckoutService) Checkout(ctx context.Context, customer domain.CustomerInfo) (*domain.CheckoutResult, error) {
	if _, ok := s.session.GetToken(ctx); !ok {
		if s.navigator != nil {
			s.navigator.Navigate(domain.ViewLogin)
		}
		return nil, domain.ErrLoginRequired
	}

	if err := s.validator.ValidateStruct(customer); err != nil {
		return nil, &domain.ValidationError{
			StatusCode: http.StatusBadRequest,
			Fields:     validator.FieldErrors(err),
		}
	}
	if customer.ShippingMethod == "" {
		customer.ShippingMethod = domain.ShippingStandard
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, &domain.ValidationError{
			StatusCode: http.StatusBadRequest,
			Message:    "cart is empty",
		}
	}

	order := domain.CheckoutRequest{
		CustomerInfo: customer,
		Items:        make([]domain.OrderItem, 0, len(items)),
	}
	for _, item := range items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	var result *domain.CheckoutResult
	err := s.session.Do(ctx, func(ctx context.Context, token string) error {
		r, err := s.orders.Checkout(ctx, token, order)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		logrus.Errorf("Checkout failed: %v", err)
		return nil, err
	}

	if err := s.cart.ClearCart(ctx); err != nil {
		logrus.Errorf("Order placed but cart could not be cleared: %v", err)
	}
	return result, nil
}
