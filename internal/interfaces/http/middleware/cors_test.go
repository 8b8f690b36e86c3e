// internal/interfaces/http/middleware/cors_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mazhar-devx/shophub-storefront/internal/config"
	"github.com/mazhar-devx/shophub-storefront/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCORSEngine(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Gateway.CORSAllowedOrigins = origins
	cfg.Gateway.CORSAllowedMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.Gateway.CORSAllowedHeaders = []string{"Origin", "Content-Type", "Authorization"}

	engine := gin.New()
	engine.Use(middleware.CORS(cfg))
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return engine
}

func corsRequest(engine *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestCORSAllowedOrigin(t *testing.T) {
	engine := newCORSEngine([]string{"http://localhost:5173"})

	resp := corsRequest(engine, http.MethodGet, "http://localhost:5173")
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Equal(t, "http://localhost:5173", resp.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, resp.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORSDisallowedOrigin(t *testing.T) {
	engine := newCORSEngine([]string{"http://localhost:5173"})

	resp := corsRequest(engine, http.MethodGet, "http://evil.example")
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	engine := newCORSEngine([]string{"http://localhost:5173"})

	resp := corsRequest(engine, http.MethodOptions, "http://localhost:5173")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "http://localhost:5173", resp.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORSWildcardSubdomain(t *testing.T) {
	engine := newCORSEngine([]string{"*.shophub.example"})

	resp := corsRequest(engine, http.MethodGet, "https://app.shophub.example")
	assert.Equal(t, "https://app.shophub.example", resp.Header().Get("Access-Control-Allow-Origin"))

	resp = corsRequest(engine, http.MethodGet, "https://other.example")
	assert.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
}
