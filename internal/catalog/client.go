// internal/catalog/client.go
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mazhar-devx/shophub-storefront/internal/api"
	"github.com/mazhar-devx/shophub-storefront/internal/config"
)

// Client fetches products from the remote catalog. It never mutates local
// cart or wishlist state; network failures surface as recoverable errors.
type Client struct {
	api          *api.Client
	suggestLimit int
	pageSize     int
}

// NewClient creates a catalog client
func NewClient(apiClient *api.Client, cfg *config.Config) *Client {
	return &Client{
		api:          apiClient,
		suggestLimit: cfg.Backend.SuggestLimit,
		pageSize:     cfg.Backend.ProductPageSize,
	}
}

// ListProducts retrieves one page of products matching the filters
func (c *Client) ListProducts(ctx context.Context, filters Filters) (*Page, error) {
	query := url.Values{}

	if filters.Query != "" {
		query.Set("search", filters.Query)
	}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}
	if filters.Brand != "" {
		query.Set("brand", filters.Brand)
	}
	if filters.MinPrice > 0 {
		query.Set("min_price", strconv.FormatInt(filters.MinPrice, 10))
	}
	if filters.MaxPrice > 0 {
		query.Set("max_price", strconv.FormatInt(filters.MaxPrice, 10))
	}
	if filters.SortBy != "" {
		query.Set("sort_by", filters.SortBy)
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 {
		limit = c.pageSize
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var result Page
	if err := c.api.Get(ctx, "/products", query, &result); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &result, nil
}

// GetProduct retrieves a single product with its authoritative stock value
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, fmt.Errorf("product id is required")
	}

	var product Product
	if err := c.api.Get(ctx, "/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}

	return &product, nil
}

// SearchSuggestions retrieves typeahead suggestions for a partial query
func (c *Client) SearchSuggestions(ctx context.Context, partial string) ([]Product, error) {
	if partial == "" {
		return nil, nil
	}

	query := url.Values{}
	query.Set("q", partial)
	query.Set("limit", strconv.Itoa(c.suggestLimit))

	var result struct {
		Suggestions []Product `json:"suggestions"`
	}
	if err := c.api.Get(ctx, "/products/suggestions", query, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch suggestions: %w", err)
	}

	return result.Suggestions, nil
}
