// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/spedire/rate-service/config"
	"github.com/spedire/rate-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*gin.Engine, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	// Initialize database components (MongoDB repository behind a circuit breaker)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services and install the initial tariff table
	serviceComponents, err := InitializeServices(cfg, dbComponents)
	if err != nil {
		return nil, err
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(
		routerComponents.Handler,
		routerComponents.TariffsHandler,
		routerComponents.HealthHandler,
		routerComponents.Config,
	), nil
}
