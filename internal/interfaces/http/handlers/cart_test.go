// internal/interfaces/http/handlers/cart_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mazhar-devx/shophub-storefront/internal/api"
	"github.com/mazhar-devx/shophub-storefront/internal/app"
	"github.com/mazhar-devx/shophub-storefront/internal/catalog"
	"github.com/mazhar-devx/shophub-storefront/internal/checkout"
	"github.com/mazhar-devx/shophub-storefront/internal/config"
	"github.com/mazhar-devx/shophub-storefront/internal/domain/cart"
	"github.com/mazhar-devx/shophub-storefront/internal/domain/wishlist"
	"github.com/mazhar-devx/shophub-storefront/internal/interfaces/http/routes"
	"github.com/mazhar-devx/shophub-storefront/internal/pkg/auth"
	"github.com/mazhar-devx/shophub-storefront/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGateway spins up the full route tree against a stubbed catalog backend
func newGateway(t *testing.T, products map[string]catalog.Product) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		product, ok := products[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "product not found"})
			return
		}
		json.NewEncoder(w).Encode(product)
	})
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)

	cfg := &config.Config{}
	cfg.App.Currency = "USD"
	cfg.Backend.BaseURL = backend.URL
	cfg.Backend.Timeout = 5 * time.Second
	cfg.Backend.SuggestLimit = 5
	cfg.Backend.ProductPageSize = 20

	ctx := context.Background()
	log := logrus.New()
	log.SetOutput(io.Discard)
	mem := storage.NewMemoryStore()

	tokens := auth.NewTokenManager(ctx, mem, log)
	apiClient := api.NewClient(cfg, tokens, nil)
	cartStore := cart.NewStore(ctx, mem, log)
	wishlistStore := wishlist.NewStore(ctx, mem, log)
	catalogClient := catalog.NewClient(apiClient, cfg)
	checkoutService := checkout.NewService(cartStore, apiClient, cfg, log)
	session := app.NewSession(cartStore, wishlistStore, catalogClient, checkoutService, tokens, apiClient, log)

	engine := gin.New()
	routes.SetupRoutes(engine.Group("/api/v1"), session, nil, log)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func testProducts() map[string]catalog.Product {
	return map[string]catalog.Product{
		"p1": {ID: "p1", Name: "Headphones", Price: 4999, Stock: 3, IsActive: true},
	}
}

func TestAddToCartEndpoint(t *testing.T) {
	engine := newGateway(t, testProducts())

	resp := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "p1",
		"quantity":   2,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data cart.State `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, 2, payload.Data.TotalQuantity)
	assert.Equal(t, int64(9998), payload.Data.TotalAmount)
}

func TestAddToCartRejectsMissingProductID(t *testing.T) {
	engine := newGateway(t, testProducts())

	resp := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", gin.H{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAddToCartStockConflict(t *testing.T) {
	engine := newGateway(t, testProducts())

	resp := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "p1", "quantity": 3})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "p1", "quantity": 1})
	require.Equal(t, http.StatusConflict, resp.Code)

	var payload struct {
		Stock int `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, 3, payload.Stock)
}

func TestAddToCartUnknownProductEndpoint(t *testing.T) {
	engine := newGateway(t, testProducts())

	resp := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "ghost", "quantity": 1})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCartLifecycleEndpoints(t *testing.T) {
	engine := newGateway(t, testProducts())

	doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "p1", "quantity": 1})
	doJSON(t, engine, http.MethodPost, "/api/v1/cart/items/p1/increase", nil)
	doJSON(t, engine, http.MethodPost, "/api/v1/cart/items/p1/decrease", nil)

	resp := doJSON(t, engine, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data cart.State `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, 1, payload.Data.TotalQuantity)

	resp = doJSON(t, engine, http.MethodDelete, "/api/v1/cart/items/p1", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, engine, http.MethodDelete, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestMoveToCartEndpointNotInWishlist(t *testing.T) {
	engine := newGateway(t, testProducts())

	resp := doJSON(t, engine, http.MethodPost, "/api/v1/wishlist/items/p1/move-to-cart", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestWishlistEndpoints(t *testing.T) {
	engine := newGateway(t, testProducts())

	resp := doJSON(t, engine, http.MethodPost, "/api/v1/wishlist/items", gin.H{"product_id": "p1"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, engine, http.MethodPost, "/api/v1/wishlist/items/p1/move-to-cart", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, engine, http.MethodGet, "/api/v1/wishlist", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data wishlist.State `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Empty(t, payload.Data.Items)
}

func TestCheckoutValidateEndpointEmptyCart(t *testing.T) {
	engine := newGateway(t, testProducts())

	resp := doJSON(t, engine, http.MethodPost, "/api/v1/checkout/validate", gin.H{
		"shipping_address": gin.H{
			"full_name":   "Jane Doe",
			"line1":       "1 Main St",
			"city":        "Springfield",
			"postal_code": "12345",
			"country":     "US",
		},
		"shipping_method_id": "standard",
		"payment_method":     "card",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
