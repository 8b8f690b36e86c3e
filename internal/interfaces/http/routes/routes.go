// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mazhar-devx/shophub-storefront/internal/app"
	"github.com/mazhar-devx/shophub-storefront/internal/interfaces/http/handlers"
	"github.com/mazhar-devx/shophub-storefront/internal/pkg/receipt"
	"github.com/sirupsen/logrus"
)

// SetupRoutes wires all storefront routes
func SetupRoutes(rg *gin.RouterGroup, session *app.Session, receipts *receipt.Service, log *logrus.Logger) {
	SetupAuthRoutes(rg, session)
	SetupProductRoutes(rg, session)
	SetupCartRoutes(rg, session)
	SetupWishlistRoutes(rg, session)
	SetupCheckoutRoutes(rg, session, receipts, log)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, session *app.Session) {
	authHandler := handlers.NewAuthHandler(session)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/session", authHandler.GetSession)
	}
}

// SetupProductRoutes sets up catalog related routes
func SetupProductRoutes(rg *gin.RouterGroup, session *app.Session) {
	productHandler := handlers.NewProductHandler(session)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/suggestions", productHandler.SearchSuggestions)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, session *app.Session) {
	cartHandler := handlers.NewCartHandler(session)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.POST("/items/:id/increase", cartHandler.IncreaseQuantity)
		cart.POST("/items/:id/decrease", cartHandler.DecreaseQuantity)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}
}

// SetupWishlistRoutes sets up wishlist related routes
func SetupWishlistRoutes(rg *gin.RouterGroup, session *app.Session) {
	wishlistHandler := handlers.NewWishlistHandler(session)

	wishlist := rg.Group("/wishlist")
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.DELETE("", wishlistHandler.ClearWishlist)
		wishlist.POST("/items", wishlistHandler.AddToWishlist)
		wishlist.POST("/items/:id/move-to-cart", wishlistHandler.MoveToCart)
		wishlist.DELETE("/items/:id", wishlistHandler.RemoveFromWishlist)
	}
}

// SetupCheckoutRoutes sets up checkout related routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, session *app.Session, receipts *receipt.Service, log *logrus.Logger) {
	checkoutHandler := handlers.NewCheckoutHandler(session, receipts, log)

	checkout := rg.Group("/checkout")
	{
		checkout.GET("/summary", checkoutHandler.GetSummary)
		checkout.POST("/validate", checkoutHandler.Validate)
		checkout.POST("/order", checkoutHandler.PlaceOrder)
	}
}
