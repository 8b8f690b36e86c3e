// internal/checkout/entity.go
package checkout

import (
	"time"

	"github.com/mazhar-devx/shophub-storefront/internal/domain/cart"
)

// Address is a shipping or billing address
type Address struct {
	FullName   string `json:"full_name" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone,omitempty"`
}

// ShippingMethod represents a shipping option
type ShippingMethod struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"` // Price in cents
	EstimatedDays string `json:"estimated_days"`
}

// Pricing represents the checkout pricing breakdown
type Pricing struct {
	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shipping_cost"`
	TaxAmount    int64 `json:"tax_amount"`
	TotalAmount  int64 `json:"total_amount"`
}

// Summary represents a complete checkout summary for review before payment
type Summary struct {
	Cart            cart.State       `json:"cart"`
	ShippingMethods []ShippingMethod `json:"shipping_methods"`
	Pricing         Pricing          `json:"pricing"`
	PublishableKey  string           `json:"publishable_key,omitempty"`
}

// PlaceOrderRequest is the input for placing an order
type PlaceOrderRequest struct {
	ShippingAddress  Address `json:"shipping_address" binding:"required"`
	ShippingMethodID string  `json:"shipping_method_id" binding:"required"`
	PaymentMethod    string  `json:"payment_method" binding:"required"`
}

// OrderItem is one line of a submitted order
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// OrderSubmission is the payload sent to the orders API
type OrderSubmission struct {
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shipping_address"`
	ShippingMethod  string      `json:"shipping_method"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentIntentID string      `json:"payment_intent_id"`
	TotalPrice      int64       `json:"total_price"`
}

// Order is the backend's record of a placed order
type Order struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"order_number"`
	Status      string      `json:"status"`
	Items       []OrderItem `json:"items"`
	TotalPrice  int64       `json:"total_price"`
	PlacedAt    time.Time   `json:"placed_at"`
}
