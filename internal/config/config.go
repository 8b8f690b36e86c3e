// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront
type Config struct {
	App     AppConfig
	Gateway GatewayConfig
	Backend BackendConfig
	Storage StorageConfig
	Redis   RedisConfig
	Payment PaymentConfig
	Receipt ReceiptConfig
	Logging LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Currency    string
	Debug       bool
}

// GatewayConfig contains the local HTTP gateway configuration
type GatewayConfig struct {
	Port               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
}

// BackendConfig contains the remote shop backend configuration
type BackendConfig struct {
	BaseURL         string
	Timeout         time.Duration
	SuggestLimit    int
	ProductPageSize int
}

// StorageConfig contains local persistence configuration
type StorageConfig struct {
	// Backend selects the durable store: "file", "redis" or "sqlite".
	Backend    string
	FilePath   string
	SQLitePath string
	KeyPrefix  string
}

// RedisConfig contains Redis configuration for the redis storage backend
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// PaymentConfig contains the payment provider configuration
type PaymentConfig struct {
	BaseURL        string
	PublishableKey string
	Timeout        time.Duration
}

// ReceiptConfig contains order receipt rendering configuration
type ReceiptConfig struct {
	Enabled      bool
	OutputDir    string
	CompanyName  string
	CompanyEmail string
	CompanyWeb   string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "ShopHub Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Currency:    getEnv("APP_CURRENCY", "USD"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Gateway: GatewayConfig{
			Port:               getEnv("GATEWAY_PORT", "4173"),
			ReadTimeout:        getEnvAsDuration("GATEWAY_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getEnvAsDuration("GATEWAY_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:        getEnvAsDuration("GATEWAY_IDLE_TIMEOUT", 60*time.Second),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:4173"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
		},
		Backend: BackendConfig{
			BaseURL:         getEnv("BACKEND_BASE_URL", "http://localhost:8080/api/v1"),
			Timeout:         getEnvAsDuration("BACKEND_TIMEOUT", 10*time.Second),
			SuggestLimit:    getEnvAsInt("BACKEND_SUGGEST_LIMIT", 8),
			ProductPageSize: getEnvAsInt("BACKEND_PRODUCT_PAGE_SIZE", 24),
		},
		Storage: StorageConfig{
			Backend:    getEnv("STORAGE_BACKEND", "file"),
			FilePath:   getEnv("STORAGE_FILE_PATH", "./data"),
			SQLitePath: getEnv("STORAGE_SQLITE_PATH", "./data/storefront.db"),
			KeyPrefix:  getEnv("STORAGE_KEY_PREFIX", "storefront"),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
		},
		Payment: PaymentConfig{
			BaseURL:        getEnv("PAYMENT_BASE_URL", "http://localhost:8080/api/v1/payment"),
			PublishableKey: getEnv("PAYMENT_PUBLISHABLE_KEY", ""),
			Timeout:        getEnvAsDuration("PAYMENT_TIMEOUT", 30*time.Second),
		},
		Receipt: ReceiptConfig{
			Enabled:      getEnvAsBool("RECEIPT_ENABLED", false),
			OutputDir:    getEnv("RECEIPT_OUTPUT_DIR", "./data/receipts"),
			CompanyName:  getEnv("RECEIPT_COMPANY_NAME", "ShopHub"),
			CompanyEmail: getEnv("RECEIPT_COMPANY_EMAIL", "support@shophub.example"),
			CompanyWeb:   getEnv("RECEIPT_COMPANY_WEB", "https://shophub.example"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}

	if c.Payment.BaseURL == "" {
		return fmt.Errorf("PAYMENT_BASE_URL is required")
	}

	switch c.Storage.Backend {
	case "file":
		if c.Storage.FilePath == "" {
			return fmt.Errorf("STORAGE_FILE_PATH is required for the file backend")
		}
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("STORAGE_SQLITE_PATH is required for the sqlite backend")
		}
	case "redis":
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}

	if c.Gateway.Port == "" {
		return fmt.Errorf("GATEWAY_PORT is required")
	}

	if _, err := strconv.Atoi(c.Gateway.Port); err != nil {
		return fmt.Errorf("GATEWAY_PORT must be numeric: %s", c.Gateway.Port)
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
