// internal/app/errors.go
package app

import (
	"errors"
	"fmt"
)

// ErrSuperseded marks a suggestion response that arrived after a newer
// request already completed; callers drop the stale result.
var ErrSuperseded = errors.New("superseded by a newer request")

// ErrNotInWishlist is returned when moving an absent wishlist item to cart
var ErrNotInWishlist = errors.New("item not found in wishlist")

// ExceedsStockError is the typed rejection for quantity requests over the
// stock ceiling. No state is mutated when it is returned.
type ExceedsStockError struct {
	ProductID string
	Requested int
	InCart    int
	Stock     int
}

func (e *ExceedsStockError) Error() string {
	return fmt.Sprintf("only %d of product %s in stock (%d already in cart, %d requested)",
		e.Stock, e.ProductID, e.InCart, e.Requested)
}

// UnavailableError is returned for inactive or out-of-stock products
type UnavailableError struct {
	ProductID string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("product %s is not available", e.ProductID)
}
