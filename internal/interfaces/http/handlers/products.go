// internal/interfaces/http/handlers/products.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mazhar-devx/shophub-storefront/internal/app"
	"github.com/mazhar-devx/shophub-storefront/internal/catalog"
)

// ProductHandler proxies catalog reads to the remote backend
type ProductHandler struct {
	session *app.Session
}

// NewProductHandler creates a new product handler
func NewProductHandler(session *app.Session) *ProductHandler {
	return &ProductHandler{session: session}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filters := catalog.Filters{
		Query:    c.Query("search"),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		SortBy:   c.Query("sort_by"),
	}

	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filters.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filters.Limit = v
	}
	if v, err := strconv.ParseInt(c.Query("min_price"), 10, 64); err == nil {
		filters.MinPrice = v
	}
	if v, err := strconv.ParseInt(c.Query("max_price"), 10, 64); err == nil {
		filters.MaxPrice = v
	}

	page, err := h.session.Catalog.ListProducts(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    page,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.session.Catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// SearchSuggestions handles GET /products/suggestions
func (h *ProductHandler) SearchSuggestions(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter q is required",
		})
		return
	}

	suggestions, err := h.session.SearchSuggestions(c.Request.Context(), query)
	if errors.Is(err, app.ErrSuperseded) {
		// A newer request already answered; tell the client to keep what it has
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Suggestions retrieved successfully",
		"data": gin.H{
			"suggestions": suggestions,
		},
	})
}
