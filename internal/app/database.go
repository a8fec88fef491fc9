// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/spedire/rate-service/config"
	"github.com/spedire/rate-service/internal/circuitbreaker"
	"github.com/spedire/rate-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                   *repository.MongoDB
	TariffRepo           repository.TariffRepositoryInterface
	TariffCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and the tariff
// repository behind a circuit breaker. Returns nil if the database is
// disabled or the connection fails; the service then runs on the seed file
// alone.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	tariffCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-tariffs",
	})

	tariffRepo := repository.NewTariffRepository(db)
	tariffRepoWithCB := repository.NewTariffRepositoryWithCircuitBreaker(tariffRepo, tariffCB)

	return &DatabaseComponents{
		DB:                   db,
		TariffRepo:           tariffRepoWithCB,
		TariffCircuitBreaker: tariffCB,
	}
}
