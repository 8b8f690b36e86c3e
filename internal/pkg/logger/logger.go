// internal/pkg/logger/logger.go
package logger

import (
	"time"

	"github.com/mazhar-devx/shophub-storefront/internal/config"
	"github.com/sirupsen/logrus"
)

// New creates a configured logrus logger
func New(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	// Set log format based on config
	if cfg.Logging.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	// Set log level
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
