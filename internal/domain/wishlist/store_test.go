// internal/domain/wishlist/store_test.go
package wishlist_test

import (
	"context"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mazhar-devx/shophub-storefront/internal/catalog"
	"github.com/mazhar-devx/shophub-storefront/internal/domain/wishlist"
	"github.com/mazhar-devx/shophub-storefront/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func product(id string) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     "Product " + id,
		Category: "gadgets",
		Price:    1999,
		Stock:    4,
		IsActive: true,
	}
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := wishlist.NewStore(ctx, storage.NewMemoryStore(), quietLogger())

	first := store.Add(ctx, product("p1"))
	require.Len(t, first.Items, 1)

	second := store.Add(ctx, product("p1"))
	require.Len(t, second.Items, 1)
	assert.Empty(t, cmp.Diff(first.Items, second.Items))
}

func TestAddAndRemove(t *testing.T) {
	ctx := context.Background()
	store := wishlist.NewStore(ctx, storage.NewMemoryStore(), quietLogger())

	store.Add(ctx, product("p1"))
	store.Add(ctx, product("p2"))
	assert.True(t, store.Contains("p1"))
	assert.True(t, store.Contains("p2"))

	state := store.Remove(ctx, "p1")
	require.Len(t, state.Items, 1)
	assert.Equal(t, "p2", state.Items[0].ProductID)
	assert.False(t, store.Contains("p1"))
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := wishlist.NewStore(ctx, storage.NewMemoryStore(), quietLogger())

	store.Add(ctx, product("p1"))
	before := store.State()

	after := store.Remove(ctx, "ghost")
	assert.Empty(t, cmp.Diff(before.Items, after.Items))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := wishlist.NewStore(ctx, storage.NewMemoryStore(), quietLogger())

	store.Add(ctx, product("p1"))
	store.Add(ctx, product("p2"))

	state := store.Clear(ctx)
	assert.Empty(t, state.Items)
	assert.False(t, store.Contains("p1"))
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	store := wishlist.NewStore(ctx, storage.NewMemoryStore(), quietLogger())

	store.Add(ctx, product("p1"))

	item, ok := store.Find("p1")
	require.True(t, ok)
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, int64(1999), item.Price)

	_, ok = store.Find("ghost")
	assert.False(t, ok)
}

func TestWriteThroughPersistence(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	log := quietLogger()

	store := wishlist.NewStore(ctx, mem, log)
	store.Add(ctx, product("p1"))
	store.Add(ctx, product("p2"))
	store.Remove(ctx, "p1")

	rehydrated := wishlist.NewStore(ctx, mem, log)

	assert.Empty(t, cmp.Diff(store.State().Items, rehydrated.State().Items))
	assert.True(t, rehydrated.Contains("p2"))
	assert.False(t, rehydrated.Contains("p1"))
}

func TestHydrateFromCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Save(ctx, storage.KeyWishlist, []byte("not even close")))

	store := wishlist.NewStore(ctx, mem, quietLogger())
	assert.Empty(t, store.State().Items)
}

func TestPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	mem.FailSaves = true

	store := wishlist.NewStore(ctx, mem, quietLogger())
	state := store.Add(ctx, product("p1"))

	require.Len(t, state.Items, 1)
	assert.True(t, store.Contains("p1"))
}
