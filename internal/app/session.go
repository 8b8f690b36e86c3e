// internal/app/session.go
package app

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/mazhar-devx/shophub-storefront/internal/api"
	"github.com/mazhar-devx/shophub-storefront/internal/catalog"
	"github.com/mazhar-devx/shophub-storefront/internal/checkout"
	"github.com/mazhar-devx/shophub-storefront/internal/domain/cart"
	"github.com/mazhar-devx/shophub-storefront/internal/domain/wishlist"
	"github.com/mazhar-devx/shophub-storefront/internal/pkg/auth"
	"github.com/sirupsen/logrus"
)

// Session is the storefront's policy layer: it sits between the transport
// handlers and the stock-agnostic domain stores, owning the checks the
// reducers deliberately do not perform. The stock ceiling is enforced here,
// against the live catalog value on add and against the line's snapshot on
// increment.
type Session struct {
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Catalog  *catalog.Client
	Checkout *checkout.Service
	Tokens   *auth.TokenManager

	api *api.Client
	log *logrus.Logger

	// suggestSeq orders suggestion requests; suggestDone records the newest
	// one that has completed, so a late response never overwrites a newer
	// result
	suggestSeq  atomic.Uint64
	suggestDone atomic.Uint64
}

// NewSession wires a storefront session
func NewSession(
	cartStore *cart.Store,
	wishlistStore *wishlist.Store,
	catalogClient *catalog.Client,
	checkoutService *checkout.Service,
	tokens *auth.TokenManager,
	apiClient *api.Client,
	log *logrus.Logger,
) *Session {
	return &Session{
		Cart:     cartStore,
		Wishlist: wishlistStore,
		Catalog:  catalogClient,
		Checkout: checkoutService,
		Tokens:   tokens,
		api:      apiClient,
		log:      log,
	}
}

// AddToCart fetches the live product and adds quantity to the cart, rejecting
// the request when the resulting quantity would exceed the stock ceiling.
// A network failure fetching the product surfaces as an error and leaves the
// cart untouched.
func (s *Session) AddToCart(ctx context.Context, productID string, quantity int) (cart.State, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.Catalog.GetProduct(ctx, productID)
	if err != nil {
		return s.Cart.State(), err
	}

	if !product.InStock() {
		return s.Cart.State(), &UnavailableError{ProductID: productID}
	}

	inCart := s.Cart.State().QuantityOf(productID)
	if inCart+quantity > product.Stock {
		return s.Cart.State(), &ExceedsStockError{
			ProductID: productID,
			Requested: quantity,
			InCart:    inCart,
			Stock:     product.Stock,
		}
	}

	return s.Cart.AddItem(ctx, *product, quantity), nil
}

// IncreaseQuantity adds one unit to an existing line. The ceiling is the
// stock snapshot taken when the line was added.
func (s *Session) IncreaseQuantity(ctx context.Context, productID string) (cart.State, error) {
	state := s.Cart.State()
	line, ok := state.Find(productID)
	if !ok {
		return state, nil
	}

	if line.Quantity+1 > line.Stock {
		return state, &ExceedsStockError{
			ProductID: productID,
			Requested: 1,
			InCart:    line.Quantity,
			Stock:     line.Stock,
		}
	}

	return s.Cart.IncreaseQuantity(ctx, productID), nil
}

// DecreaseQuantity removes one unit, deleting the line at quantity one
func (s *Session) DecreaseQuantity(ctx context.Context, productID string) cart.State {
	return s.Cart.DecreaseQuantity(ctx, productID)
}

// RemoveFromCart removes the line for the product id
func (s *Session) RemoveFromCart(ctx context.Context, productID string) cart.State {
	return s.Cart.RemoveItem(ctx, productID)
}

// ClearCart empties the cart
func (s *Session) ClearCart(ctx context.Context) cart.State {
	return s.Cart.Clear(ctx)
}

// AddToWishlist fetches the live product and saves a snapshot; duplicate adds
// are no-ops
func (s *Session) AddToWishlist(ctx context.Context, productID string) (wishlist.State, error) {
	product, err := s.Catalog.GetProduct(ctx, productID)
	if err != nil {
		return s.Wishlist.State(), err
	}

	return s.Wishlist.Add(ctx, *product), nil
}

// MoveToCart moves a wishlist item into the cart with quantity one. The cart
// add runs first; the wishlist entry is removed only once the add succeeded,
// so a failed add never silently drops the saved item.
func (s *Session) MoveToCart(ctx context.Context, productID string) (cart.State, wishlist.State, error) {
	if !s.Wishlist.Contains(productID) {
		return s.Cart.State(), s.Wishlist.State(), ErrNotInWishlist
	}

	cartState, err := s.AddToCart(ctx, productID, 1)
	if err != nil {
		return cartState, s.Wishlist.State(), err
	}

	return cartState, s.Wishlist.Remove(ctx, productID), nil
}

// SearchSuggestions fetches typeahead suggestions with last-response-wins
// semantics: a result is discarded with ErrSuperseded only when a newer
// request has already completed successfully. A newer request that merely
// started, or that failed, does not invalidate an older result.
func (s *Session) SearchSuggestions(ctx context.Context, query string) ([]catalog.Product, error) {
	seq := s.suggestSeq.Add(1)

	suggestions, err := s.Catalog.SearchSuggestions(ctx, query)
	if err != nil {
		return nil, err
	}

	for {
		done := s.suggestDone.Load()
		if seq <= done {
			return nil, ErrSuperseded
		}
		if s.suggestDone.CompareAndSwap(done, seq) {
			return suggestions, nil
		}
	}
}

// Login authenticates against the backend and persists the issued token
func (s *Session) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}

	req := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp struct {
		Token       string `json:"token"`
		AccessToken string `json:"access_token"`
	}
	if err := s.api.Post(ctx, "/auth/login", req, &resp); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	token := resp.Token
	if token == "" {
		token = resp.AccessToken
	}
	if token == "" {
		return fmt.Errorf("login response carried no token")
	}

	return s.Tokens.Set(ctx, token)
}

// Logout clears the stored credentials. Cart and wishlist survive logout:
// they are local state, reusable after the next login.
func (s *Session) Logout(ctx context.Context) {
	if err := s.api.Post(ctx, "/auth/logout", nil, nil); err != nil {
		s.log.WithError(err).Debug("Backend logout failed, clearing local session anyway")
	}
	s.Tokens.Clear(ctx)
}
