// internal/checkout/payment.go
package checkout

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mazhar-devx/shophub-storefront/internal/api"
)

// PaymentIntent is the provider's handle for a payment in progress
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// PaymentClient drives the two-step payment flow: the backend creates an
// intent, the client confirms it. The provider itself is never called
// directly. Requests go to the payments API base URL, which carries its own
// timeout since payment confirmation can outlast a catalog read.
type PaymentClient struct {
	api *api.Client
}

// NewPaymentClient creates a payment client. apiClient must already be aimed
// at the payments API base URL.
func NewPaymentClient(apiClient *api.Client) *PaymentClient {
	return &PaymentClient{api: apiClient}
}

// CreateIntent asks the backend to create a payment intent for the amount
func (p *PaymentClient) CreateIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	req := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
	}

	var intent PaymentIntent
	if err := p.api.Post(ctx, "/intent", req, &intent); err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &intent, nil
}

// ConfirmIntent confirms the intent with the chosen payment method
func (p *PaymentClient) ConfirmIntent(ctx context.Context, intentID, paymentMethod string) (*PaymentIntent, error) {
	if intentID == "" {
		return nil, fmt.Errorf("payment intent id is required")
	}

	req := map[string]interface{}{
		"payment_method": paymentMethod,
	}

	var intent PaymentIntent
	err := p.api.Post(ctx, "/intent/"+intentID+"/confirm", req, &intent)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm payment intent: %w", err)
	}

	if intent.Status != "succeeded" {
		return &intent, &api.APIError{
			Status:  http.StatusPaymentRequired,
			Message: fmt.Sprintf("payment not completed, intent status is %q", intent.Status),
		}
	}

	return &intent, nil
}
