// cmd/storefront/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mazhar-devx/shophub-storefront/internal/api"
	"github.com/mazhar-devx/shophub-storefront/internal/app"
	"github.com/mazhar-devx/shophub-storefront/internal/catalog"
	"github.com/mazhar-devx/shophub-storefront/internal/checkout"
	"github.com/mazhar-devx/shophub-storefront/internal/config"
	"github.com/mazhar-devx/shophub-storefront/internal/domain/cart"
	"github.com/mazhar-devx/shophub-storefront/internal/domain/wishlist"
	httpserver "github.com/mazhar-devx/shophub-storefront/internal/interfaces/http"
	"github.com/mazhar-devx/shophub-storefront/internal/pkg/auth"
	"github.com/mazhar-devx/shophub-storefront/internal/pkg/logger"
	"github.com/mazhar-devx/shophub-storefront/internal/pkg/receipt"
	"github.com/mazhar-devx/shophub-storefront/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg)
	appLog.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Open durable local storage
	store, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to open local storage: %v", err)
	}

	ctx := context.Background()

	// Hydrate persisted session state
	tokens := auth.NewTokenManager(ctx, store, appLog)
	cartStore := cart.NewStore(ctx, store, appLog)
	wishlistStore := wishlist.NewStore(ctx, store, appLog)

	// Backend API clients. A 401 anywhere clears the stored credentials but
	// never touches cart or wishlist state.
	apiClient := api.NewClient(cfg, tokens, func() {
		appLog.Warn("Session rejected by backend, clearing stored credentials")
		tokens.Clear(context.Background())
	})
	catalogClient := catalog.NewClient(apiClient, cfg)
	checkoutService := checkout.NewService(cartStore, apiClient, cfg, appLog)

	session := app.NewSession(cartStore, wishlistStore, catalogClient, checkoutService, tokens, apiClient, appLog)

	// Optional order receipt rendering
	var receipts *receipt.Service
	if cfg.Receipt.Enabled {
		receipts, err = receipt.NewService(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize receipt service: %v", err)
		}
	}

	appLog.WithField("items", cartStore.State().TotalQuantity).Info("✅ Storefront session restored")

	// Create and start the gateway
	server := httpserver.NewServer(cfg, session, receipts, appLog)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start storefront gateway: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLog.Info("👋 Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		appLog.WithError(err).Error("Failed to shutdown gateway gracefully")
	}

	appLog.Info("✅ Shutdown completed")
}

// openStorage selects the durable storage backend from configuration
func openStorage(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "redis":
		return storage.NewRedisStore(cfg)
	case "sqlite":
		return storage.NewSQLiteStore(cfg.Storage.SQLitePath)
	default:
		return storage.NewFileStore(cfg.Storage.FilePath)
	}
}
