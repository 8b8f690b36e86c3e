// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mazhar-devx/shophub-storefront/internal/app"
	"github.com/mazhar-devx/shophub-storefront/internal/config"
	"github.com/mazhar-devx/shophub-storefront/internal/interfaces/http/middleware"
	"github.com/mazhar-devx/shophub-storefront/internal/interfaces/http/routes"
	"github.com/mazhar-devx/shophub-storefront/internal/pkg/receipt"
	"github.com/sirupsen/logrus"
)

// Server is the local storefront gateway the UI talks to
type Server struct {
	config     *config.Config
	gin        *gin.Engine
	httpServer *http.Server
	session    *app.Session
	receipts   *receipt.Service
	log        *logrus.Logger
	startedAt  time.Time
}

// NewServer creates a new gateway server instance. receipts may be nil when
// receipt rendering is disabled.
func NewServer(cfg *config.Config, session *app.Session, receipts *receipt.Service, log *logrus.Logger) *Server {
	return &Server{
		config:   cfg,
		session:  session,
		receipts: receipts,
		log:      log,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on environment
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Create Gin engine
	s.gin = gin.New()
	s.startedAt = time.Now()

	// Setup middleware
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.CORS(s.config))
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.log))

	// Setup routes
	s.setupRoutes()

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Gateway.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Gateway.ReadTimeout,
		WriteTimeout: s.config.Gateway.WriteTimeout,
		IdleTimeout:  s.config.Gateway.IdleTimeout,
	}

	s.log.WithFields(logrus.Fields{
		"port":    s.config.Gateway.Port,
		"backend": s.config.Backend.BaseURL,
	}).Info("Storefront gateway starting")

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down storefront gateway")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.gin.GET("/health", s.healthCheck)

	// API v1 routes
	apiV1 := s.gin.Group("/api/v1")
	routes.SetupRoutes(apiV1, s.session, s.receipts, s.log)
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"uptime":      time.Since(s.startedAt).String(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}
