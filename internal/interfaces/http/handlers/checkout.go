// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazhar-devx/shophub-storefront/internal/app"
	"github.com/mazhar-devx/shophub-storefront/internal/checkout"
	"github.com/mazhar-devx/shophub-storefront/internal/pkg/receipt"
	"github.com/sirupsen/logrus"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	session  *app.Session
	receipts *receipt.Service
	log      *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler. receipts may be nil when
// receipt rendering is disabled.
func NewCheckoutHandler(session *app.Session, receipts *receipt.Service, log *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		session:  session,
		receipts: receipts,
		log:      log,
	}
}

// GetSummary handles GET /checkout/summary
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    h.session.Checkout.Summary(),
	})
}

// Validate handles POST /checkout/validate
func (h *CheckoutHandler) Validate(c *gin.Context) {
	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.session.Checkout.Validate(&req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout validation successful",
	})
}

// PlaceOrder handles POST /checkout/order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	order, err := h.session.Checkout.PlaceOrder(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{
		"message": "Order placed successfully",
		"data":    order,
	}

	if h.receipts != nil {
		if path, err := h.receipts.Save(order); err != nil {
			h.log.WithError(err).Warn("Failed to render order receipt")
		} else {
			response["receipt"] = path
		}
	}

	c.JSON(http.StatusCreated, response)
}
