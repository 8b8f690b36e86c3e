// internal/domain/wishlist/store.go
package wishlist

import (
	"context"
	"errors"
	"sync"

	"github.com/mazhar-devx/shophub-storefront/internal/catalog"
	"github.com/mazhar-devx/shophub-storefront/internal/storage"
	"github.com/sirupsen/logrus"
)

// Store owns the in-memory wishlist and writes every mutation through to
// durable storage, with the same swallow-persist-errors contract as the cart
// store.
type Store struct {
	mu      sync.Mutex
	state   State
	storage storage.Store
	log     *logrus.Logger
}

// NewStore creates a wishlist store hydrated from durable storage
func NewStore(ctx context.Context, st storage.Store, log *logrus.Logger) *Store {
	store := &Store{
		state:   NewState(),
		storage: st,
		log:     log,
	}

	raw, err := st.Load(ctx, storage.KeyWishlist)
	if errors.Is(err, storage.ErrNotFound) {
		return store
	}
	if err != nil {
		log.WithError(err).Warn("Failed to load wishlist snapshot, starting empty")
		return store
	}

	var state State
	if err := storage.DecodeSnapshot(raw, &state); err != nil {
		log.WithError(err).Warn("Discarding unreadable wishlist snapshot")
		return store
	}
	if state.Items == nil {
		state.Items = []Item{}
	}

	store.state = state
	return store
}

// State returns a snapshot of the current wishlist state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Add inserts the product if not already present. The add is idempotent:
// duplicates leave the state unchanged.
func (s *Store) Add(ctx context.Context, product catalog.Product) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.add(product) {
		s.persist(ctx)
	}
	return s.state.clone()
}

// Remove drops the product id if present; absent ids are a no-op
func (s *Store) Remove(ctx context.Context, productID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.remove(productID) {
		s.persist(ctx)
	}
	return s.state.clone()
}

// Clear resets the wishlist to empty
func (s *Store) Clear(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.clear()
	s.persist(ctx)
	return s.state.clone()
}

// Contains reports whether a product id is in the wishlist
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Contains(productID)
}

// Find returns the stored snapshot for a product id, if present
func (s *Store) Find(productID string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Find(productID)
}

func (s *Store) persist(ctx context.Context) {
	raw, err := storage.EncodeSnapshot(s.state)
	if err != nil {
		s.log.WithError(err).Warn("Failed to encode wishlist snapshot")
		return
	}

	if err := s.storage.Save(ctx, storage.KeyWishlist, raw); err != nil {
		s.log.WithError(err).Warn("Failed to persist wishlist, in-memory state remains authoritative")
	}
}
