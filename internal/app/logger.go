// Package app provides logger initialization.
package app

import (
	"github.com/spedire/rate-service/config"
	"github.com/spedire/rate-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
