// internal/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/mazhar-devx/shophub-storefront/internal/api"
	"github.com/mazhar-devx/shophub-storefront/internal/config"
	"github.com/mazhar-devx/shophub-storefront/internal/domain/cart"
	"github.com/sirupsen/logrus"
)

// ErrEmptyCart is returned when checkout is attempted with no items
var ErrEmptyCart = fmt.Errorf("cart is empty")

// ValidationError carries user-facing field errors from checkout validation
type ValidationError struct {
	Errors []string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return "checkout validation failed: " + strings.Join(e.Errors, "; ")
}

// Service orchestrates checkout: summary, validation, payment and order
// submission. The cart is cleared only after the backend has accepted the
// order; any failure along the way leaves it untouched.
type Service struct {
	cartStore *cart.Store
	api       *api.Client
	payments  *PaymentClient
	config    *config.Config
	log       *logrus.Logger
}

// NewService creates a checkout service. Payment calls go to the payments API
// base URL with its own timeout; everything else rides the shared client.
func NewService(cartStore *cart.Store, apiClient *api.Client, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		cartStore: cartStore,
		api:       apiClient,
		payments:  NewPaymentClient(apiClient.WithBase(cfg.Payment.BaseURL, cfg.Payment.Timeout)),
		config:    cfg,
		log:       log,
	}
}

// ShippingMethods returns the available shipping options
func (s *Service) ShippingMethods() []ShippingMethod {
	return []ShippingMethod{
		{ID: "standard", Name: "Standard Shipping", Price: 499, EstimatedDays: "5-7"},
		{ID: "express", Name: "Express Shipping", Price: 1499, EstimatedDays: "1-2"},
	}
}

// Summary builds the pricing breakdown for the current cart. The payment
// provider's publishable key rides along so the UI can tokenize cards.
func (s *Service) Summary() Summary {
	state := s.cartStore.State()

	return Summary{
		Cart:            state,
		ShippingMethods: s.ShippingMethods(),
		Pricing:         s.pricing(state, ""),
		PublishableKey:  s.config.Payment.PublishableKey,
	}
}

// Validate checks the order request against the current cart. Validation
// failures are reported synchronously and mutate nothing.
func (s *Service) Validate(req *PlaceOrderRequest) error {
	state := s.cartStore.State()
	if state.IsEmpty() {
		return ErrEmptyCart
	}

	var errs []string

	if req.ShippingAddress.FullName == "" {
		errs = append(errs, "shipping address requires a full name")
	}
	if req.ShippingAddress.Line1 == "" {
		errs = append(errs, "shipping address requires an address line")
	}
	if req.ShippingAddress.City == "" {
		errs = append(errs, "shipping address requires a city")
	}
	if req.ShippingAddress.PostalCode == "" {
		errs = append(errs, "shipping address requires a postal code")
	}
	if req.ShippingAddress.Country == "" {
		errs = append(errs, "shipping address requires a country")
	}
	if s.findShippingMethod(req.ShippingMethodID) == nil {
		errs = append(errs, fmt.Sprintf("unknown shipping method %q", req.ShippingMethodID))
	}
	if req.PaymentMethod == "" {
		errs = append(errs, "a payment method is required")
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}

// PlaceOrder runs the full checkout flow: validate, create and confirm the
// payment intent, submit the order, then clear the cart.
func (s *Service) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*Order, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	state := s.cartStore.State()
	pricing := s.pricing(state, req.ShippingMethodID)

	intent, err := s.payments.CreateIntent(ctx, pricing.TotalAmount, s.config.App.Currency)
	if err != nil {
		return nil, err
	}

	if _, err := s.payments.ConfirmIntent(ctx, intent.ID, req.PaymentMethod); err != nil {
		return nil, err
	}

	submission := OrderSubmission{
		Items:           orderItems(state),
		ShippingAddress: req.ShippingAddress,
		ShippingMethod:  req.ShippingMethodID,
		PaymentMethod:   req.PaymentMethod,
		PaymentIntentID: intent.ID,
		TotalPrice:      pricing.TotalAmount,
	}

	var order Order
	if err := s.api.Post(ctx, "/orders", submission, &order); err != nil {
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	// Order accepted: the cart's lifecycle ends here
	s.cartStore.Clear(ctx)

	s.log.WithFields(logrus.Fields{
		"order_number": order.OrderNumber,
		"total":        order.TotalPrice,
		"items":        len(order.Items),
	}).Info("Order placed")

	return &order, nil
}

// Private helper methods

func (s *Service) pricing(state cart.State, shippingMethodID string) Pricing {
	pricing := Pricing{
		Subtotal: state.TotalAmount,
	}

	if method := s.findShippingMethod(shippingMethodID); method != nil {
		pricing.ShippingCost = method.Price
	}

	// Tax is computed server-side on submission; the client shows zero
	pricing.TaxAmount = 0
	pricing.TotalAmount = pricing.Subtotal + pricing.ShippingCost + pricing.TaxAmount

	return pricing
}

func (s *Service) findShippingMethod(id string) *ShippingMethod {
	for _, method := range s.ShippingMethods() {
		if method.ID == id {
			return &method
		}
	}
	return nil
}

func orderItems(state cart.State) []OrderItem {
	items := make([]OrderItem, len(state.Items))
	for i, line := range state.Items {
		items[i] = OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		}
	}
	return items
}
