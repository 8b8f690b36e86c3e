// internal/domain/wishlist/entity.go
package wishlist

import (
	"time"

	"github.com/mazhar-devx/shophub-storefront/internal/catalog"
)

// Item is a product snapshot saved for later. Unlike a cart line there is no
// quantity or stock arithmetic: the wishlist is a pure presence set keyed by
// product id.
type Item struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Image     string    `json:"image,omitempty"`
	Price     int64     `json:"price"` // Price in cents, at time of add
	Stock     int       `json:"stock"`
	AddedAt   time.Time `json:"added_at"`
}

// State is the wishlist state tree
type State struct {
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewState returns the empty wishlist state
func NewState() State {
	return State{Items: []Item{}}
}

// add inserts a snapshot of the product; duplicate ids are a no-op
func (s *State) add(product catalog.Product) bool {
	if s.Contains(product.ID) {
		return false
	}

	s.Items = append(s.Items, Item{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Image:     product.PrimaryImage(),
		Price:     product.Price,
		Stock:     product.Stock,
		AddedAt:   time.Now().UTC(),
	})
	s.UpdatedAt = time.Now().UTC()
	return true
}

// remove drops the item for the product id; absent ids are a no-op
func (s *State) remove(productID string) bool {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			s.UpdatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

// clear resets the wishlist to empty
func (s *State) clear() {
	s.Items = []Item{}
	s.UpdatedAt = time.Now().UTC()
}

// Contains reports whether a product id is in the wishlist
func (s State) Contains(productID string) bool {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Find returns the item for a product id, if present
func (s State) Find(productID string) (Item, bool) {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return Item{}, false
}

func (s State) clone() State {
	out := s
	out.Items = make([]Item, len(s.Items))
	copy(out.Items, s.Items)
	return out
}
