// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazhar-devx/shophub-storefront/internal/app"
)

// AuthHandler handles session authentication against the remote backend
type AuthHandler struct {
	session *app.Session
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(session *app.Session) *AuthHandler {
	return &AuthHandler{session: session}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.session.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"data": gin.H{
			"email": h.session.Tokens.Email(),
		},
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.session.Logout(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetSession handles GET /auth/session
func (h *AuthHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Session retrieved successfully",
		"data": gin.H{
			"authenticated": h.session.Tokens.IsAuthenticated(),
			"email":         h.session.Tokens.Email(),
		},
	})
}
