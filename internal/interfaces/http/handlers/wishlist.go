// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazhar-devx/shophub-storefront/internal/app"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	session *app.Session
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(session *app.Session) *WishlistHandler {
	return &WishlistHandler{session: session}
}

// AddToWishlistRequest represents add to wishlist request
type AddToWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data":    h.session.Wishlist.State(),
	})
}

// AddToWishlist handles POST /wishlist/items
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state, err := h.session.AddToWishlist(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to wishlist successfully",
		"data":    state,
	})
}

// RemoveFromWishlist handles DELETE /wishlist/items/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	state := h.session.Wishlist.Remove(c.Request.Context(), c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist successfully",
		"data":    state,
	})
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	state := h.session.Wishlist.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist cleared successfully",
		"data":    state,
	})
}

// MoveToCart handles POST /wishlist/items/:id/move-to-cart
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	cartState, wishlistState, err := h.session.MoveToCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item moved to cart successfully",
		"data": gin.H{
			"cart":     cartState,
			"wishlist": wishlistState,
		},
	})
}
