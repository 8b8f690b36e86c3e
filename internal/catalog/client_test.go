// internal/catalog/client_test.go
package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/mazhar-devx/shophub-storefront/internal/api"
	"github.com/mazhar-devx/shophub-storefront/internal/catalog"
	"github.com/mazhar-devx/shophub-storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noTokens struct{}

func (noTokens) Token() string { return "" }

func newCatalogClient(baseURL string) *catalog.Client {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL
	cfg.Backend.Timeout = 5 * time.Second
	cfg.Backend.SuggestLimit = 5
	cfg.Backend.ProductPageSize = 20
	return catalog.NewClient(api.NewClient(cfg, noTokens{}, nil), cfg)
}

func TestListProducts(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{"id": "p1", "name": "Headphones", "price": 4999, "stock": 3, "is_active": true},
				{"id": "p2", "name": "Keyboard", "price": 8999, "stock": 0, "is_active": true}
			],
			"pagination": {"page": 2, "limit": 20, "total": 42, "total_pages": 3, "has_next": true, "has_prev": true}
		}`))
	}))
	defer server.Close()

	client := newCatalogClient(server.URL)

	page, err := client.ListProducts(context.Background(), catalog.Filters{
		Query:    "head",
		Category: "audio",
		MinPrice: 1000,
		Page:     2,
	})
	require.NoError(t, err)

	assert.Equal(t, "/products", gotPath)
	assert.Equal(t, "head", gotQuery.Get("search"))
	assert.Equal(t, "audio", gotQuery.Get("category"))
	assert.Equal(t, "1000", gotQuery.Get("min_price"))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "20", gotQuery.Get("limit"), "limit defaults to the configured page size")

	require.Len(t, page.Products, 2)
	assert.Equal(t, int64(4999), page.Products[0].Price)
	assert.True(t, page.Products[0].InStock())
	assert.False(t, page.Products[1].InStock())
	assert.Equal(t, 42, page.Pagination.Total)
}

func TestGetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/p1", r.URL.Path)
		w.Write([]byte(`{"id": "p1", "name": "Headphones", "price": 4999, "stock": 3, "is_active": true}`))
	}))
	defer server.Close()

	client := newCatalogClient(server.URL)

	product, err := client.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Headphones", product.Name)
	assert.Equal(t, 3, product.Stock)
}

func TestGetProductNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"product not found"}`))
	}))
	defer server.Close()

	client := newCatalogClient(server.URL)

	_, err := client.GetProduct(context.Background(), "ghost")
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestGetProductRequiresID(t *testing.T) {
	client := newCatalogClient("http://unused")
	_, err := client.GetProduct(context.Background(), "")
	assert.Error(t, err)
}

func TestSearchSuggestions(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"suggestions":[{"id":"p1","name":"Headphones"}]}`))
	}))
	defer server.Close()

	client := newCatalogClient(server.URL)

	suggestions, err := client.SearchSuggestions(context.Background(), "hea")
	require.NoError(t, err)

	assert.Equal(t, "hea", gotQuery.Get("q"))
	assert.Equal(t, "5", gotQuery.Get("limit"))
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Headphones", suggestions[0].Name)
}

func TestSearchSuggestionsEmptyQuery(t *testing.T) {
	client := newCatalogClient("http://unused")

	suggestions, err := client.SearchSuggestions(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, suggestions)
}

func TestPrimaryImage(t *testing.T) {
	p := catalog.Product{Images: []catalog.Image{
		{URL: "a.jpg"},
		{URL: "b.jpg", IsPrimary: true},
	}}
	assert.Equal(t, "b.jpg", p.PrimaryImage())

	p.Images = p.Images[:1]
	assert.Equal(t, "a.jpg", p.PrimaryImage())

	p.Images = nil
	assert.Empty(t, p.PrimaryImage())
}
