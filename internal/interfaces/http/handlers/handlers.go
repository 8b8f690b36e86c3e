// internal/interfaces/http/handlers/handlers.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazhar-devx/shophub-storefront/internal/api"
	"github.com/mazhar-devx/shophub-storefront/internal/app"
	"github.com/mazhar-devx/shophub-storefront/internal/checkout"
)

// respondError maps session and backend errors onto HTTP statuses. Validation
// and stock-policy rejections are client errors; anything that came back from
// the remote backend is surfaced as a gateway error so the UI can show its
// recoverable error state.
func respondError(c *gin.Context, err error) {
	var exceedsStock *app.ExceedsStockError
	var unavailable *app.UnavailableError
	var validation *checkout.ValidationError
	var apiErr *api.APIError

	switch {
	case errors.As(err, &exceedsStock):
		c.JSON(http.StatusConflict, gin.H{
			"error": exceedsStock.Error(),
			"stock": exceedsStock.Stock,
		})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": unavailable.Error(),
		})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "Validation failed",
			"validation_errors": validation.Errors,
		})
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
	case errors.Is(err, app.ErrNotInWishlist):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in wishlist",
		})
	case errors.Is(err, api.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session expired, please log in again",
		})
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"error": apiErr.Message,
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error": err.Error(),
		})
	}
}
