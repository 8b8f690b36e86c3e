// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/mazhar-devx/shophub-storefront/internal/catalog"
)

// Line is one product entry in the cart. TotalPrice is derived and always
// equals Price*Quantity; it is never set independently. Stock is the
// inventory ceiling snapshotted when the product was added, not live-updated.
type Line struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Image      string `json:"image,omitempty"`
	Price      int64  `json:"price"` // Price in cents
	Quantity   int    `json:"quantity"`
	Stock      int    `json:"stock"`
	TotalPrice int64  `json:"total_price"`
}

// State is the full cart state tree. TotalQuantity and TotalAmount are
// maintained incrementally by the mutations below and always equal the sums
// over Items.
type State struct {
	Items         []Line    `json:"items"`
	TotalQuantity int       `json:"total_quantity"`
	TotalAmount   int64     `json:"total_amount"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewState returns the empty cart state
func NewState() State {
	return State{Items: []Line{}}
}

// The mutations below are pure arithmetic over the state tree. They do not
// enforce the stock ceiling: that policy belongs to the caller, which checks
// the live catalog stock before invoking them (see internal/app).

// addItem inserts a new line for the product or accumulates quantity onto an
// existing one
func (s *State) addItem(product catalog.Product, quantity int) {
	for i := range s.Items {
		if s.Items[i].ProductID == product.ID {
			s.Items[i].Quantity += quantity
			s.Items[i].TotalPrice += product.Price * int64(quantity)
			s.applyDelta(quantity, product.Price*int64(quantity))
			return
		}
	}

	s.Items = append(s.Items, Line{
		ProductID:  product.ID,
		Name:       product.Name,
		Category:   product.Category,
		Image:      product.PrimaryImage(),
		Price:      product.Price,
		Quantity:   quantity,
		Stock:      product.Stock,
		TotalPrice: product.Price * int64(quantity),
	})
	s.applyDelta(quantity, product.Price*int64(quantity))
}

// removeItem drops the line for the product; absent ids are a no-op
func (s *State) removeItem(productID string) {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			s.applyDelta(-s.Items[i].Quantity, -s.Items[i].TotalPrice)
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return
		}
	}
}

// increaseQuantity adds one unit to the line; absent ids are a no-op
func (s *State) increaseQuantity(productID string) {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			s.Items[i].Quantity++
			s.Items[i].TotalPrice += s.Items[i].Price
			s.applyDelta(1, s.Items[i].Price)
			return
		}
	}
}

// decreaseQuantity removes one unit from the line; a line at quantity one is
// deleted entirely so a zero-quantity line never exists. Absent ids are a
// no-op.
func (s *State) decreaseQuantity(productID string) {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			if s.Items[i].Quantity == 1 {
				s.applyDelta(-1, -s.Items[i].TotalPrice)
				s.Items = append(s.Items[:i], s.Items[i+1:]...)
				return
			}

			s.Items[i].Quantity--
			s.Items[i].TotalPrice -= s.Items[i].Price
			s.applyDelta(-1, -s.Items[i].Price)
			return
		}
	}
}

// clear resets the cart to empty
func (s *State) clear() {
	s.Items = []Line{}
	s.TotalQuantity = 0
	s.TotalAmount = 0
	s.UpdatedAt = time.Now().UTC()
}

func (s *State) applyDelta(quantity int, amount int64) {
	s.TotalQuantity += quantity
	s.TotalAmount += amount
	s.UpdatedAt = time.Now().UTC()
}

// Find returns the line for a product id, if present
func (s State) Find(productID string) (Line, bool) {
	for _, line := range s.Items {
		if line.ProductID == productID {
			return line, true
		}
	}
	return Line{}, false
}

// QuantityOf returns the quantity currently in the cart for a product id
func (s State) QuantityOf(productID string) int {
	line, ok := s.Find(productID)
	if !ok {
		return 0
	}
	return line.Quantity
}

// IsEmpty reports whether the cart has no lines
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// clone returns a deep copy so callers can hold a snapshot without racing
// against later mutations
func (s State) clone() State {
	out := s
	out.Items = make([]Line, len(s.Items))
	copy(out.Items, s.Items)
	return out
}
