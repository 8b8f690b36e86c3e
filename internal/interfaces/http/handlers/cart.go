// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazhar-devx/shophub-storefront/internal/app"
)

// CartHandler handles cart endpoints. The stock-ceiling policy lives in the
// session layer these handlers call, not in the cart reducers.
type CartHandler struct {
	session *app.Session
}

// NewCartHandler creates a new cart handler
func NewCartHandler(session *app.Session) *CartHandler {
	return &CartHandler{session: session}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.session.Cart.State(),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state, err := h.session.AddToCart(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    state,
	})
}

// IncreaseQuantity handles POST /cart/items/:id/increase
func (h *CartHandler) IncreaseQuantity(c *gin.Context) {
	state, err := h.session.IncreaseQuantity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    state,
	})
}

// DecreaseQuantity handles POST /cart/items/:id/decrease
func (h *CartHandler) DecreaseQuantity(c *gin.Context) {
	state := h.session.DecreaseQuantity(c.Request.Context(), c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    state,
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	state := h.session.RemoveFromCart(c.Request.Context(), c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    state,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	state := h.session.ClearCart(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    state,
	})
}
