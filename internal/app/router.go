// Package app provides router configuration.
package app

import (
	"github.com/spedire/rate-service/config"
	"github.com/spedire/rate-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler        *http.Handler
	TariffsHandler *http.TariffsHandler
	HealthHandler  *http.HealthHandler
	Config         http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(services.Quoter, http.WithDiagnostics(cfg.Pricing.DiagnosticsEnabled))
	tariffsHandler := http.NewTariffsHandler(services.Tariffs)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("tariffs", http.HealthCheckerFunc(func() error {
		_, err := services.Tariffs.Active()
		return err
	}))
	if dbComponents != nil && dbComponents.TariffCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_tariffs", dbComponents.TariffCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Handler:        handler,
		TariffsHandler: tariffsHandler,
		HealthHandler:  healthHandler,
		Config:         routerCfg,
	}
}
