// internal/domain/cart/store.go
package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/mazhar-devx/shophub-storefront/internal/catalog"
	"github.com/mazhar-devx/shophub-storefront/internal/storage"
	"github.com/sirupsen/logrus"
)

// Store owns the in-memory cart state and writes every mutation through to
// durable storage. Mutations are serialized by a mutex; the in-memory state
// stays authoritative for the session even when a persist fails, so storage
// errors are logged and swallowed rather than returned.
type Store struct {
	mu      sync.Mutex
	state   State
	storage storage.Store
	log     *logrus.Logger
}

// NewStore creates a cart store hydrated from durable storage. A missing,
// corrupt or version-mismatched snapshot hydrates to the empty cart.
func NewStore(ctx context.Context, st storage.Store, log *logrus.Logger) *Store {
	store := &Store{
		state:   NewState(),
		storage: st,
		log:     log,
	}

	raw, err := st.Load(ctx, storage.KeyCart)
	if errors.Is(err, storage.ErrNotFound) {
		return store
	}
	if err != nil {
		log.WithError(err).Warn("Failed to load cart snapshot, starting empty")
		return store
	}

	var state State
	if err := storage.DecodeSnapshot(raw, &state); err != nil {
		log.WithError(err).Warn("Discarding unreadable cart snapshot")
		return store
	}
	if state.Items == nil {
		state.Items = []Line{}
	}

	store.state = state
	return store
}

// State returns a snapshot of the current cart state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// AddItem inserts or accumulates a line for the product. The stock ceiling is
// deliberately not checked here; callers validate against the live catalog
// stock first.
func (s *Store) AddItem(ctx context.Context, product catalog.Product, quantity int) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.addItem(product, quantity)
	s.persist(ctx)
	return s.state.clone()
}

// RemoveItem removes the line for the product id; absent ids are a no-op
func (s *Store) RemoveItem(ctx context.Context, productID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.removeItem(productID)
	s.persist(ctx)
	return s.state.clone()
}

// IncreaseQuantity adds one unit to the product's line; absent ids are a
// no-op. Callers pre-check against the line's stock snapshot.
func (s *Store) IncreaseQuantity(ctx context.Context, productID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.increaseQuantity(productID)
	s.persist(ctx)
	return s.state.clone()
}

// DecreaseQuantity removes one unit from the product's line, deleting the
// line when it would reach zero
func (s *Store) DecreaseQuantity(ctx context.Context, productID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.decreaseQuantity(productID)
	s.persist(ctx)
	return s.state.clone()
}

// Clear resets the cart to empty
func (s *Store) Clear(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.clear()
	s.persist(ctx)
	return s.state.clone()
}

// persist write-through saves the whole state. Callers hold the mutex.
func (s *Store) persist(ctx context.Context) {
	raw, err := storage.EncodeSnapshot(s.state)
	if err != nil {
		s.log.WithError(err).Warn("Failed to encode cart snapshot")
		return
	}

	if err := s.storage.Save(ctx, storage.KeyCart, raw); err != nil {
		s.log.WithError(err).Warn("Failed to persist cart, in-memory state remains authoritative")
	}
}
