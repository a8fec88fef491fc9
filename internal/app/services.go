// Package app provides service initialization.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/spedire/rate-service/config"
	"github.com/spedire/rate-service/internal/repository"
	"github.com/spedire/rate-service/internal/service"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	Tariffs *service.TariffService
	Quoter  service.RateQuoter
}

// InitializeServices initializes the tariff service and the rate calculator,
// then installs the initial tariff table: from the database when one is
// stored, otherwise from the configured seed file.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) (*ServiceComponents, error) {
	pricing, err := buildPricingConfig(cfg.Pricing)
	if err != nil {
		return nil, err
	}
	if err := pricing.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pricing configuration: %w", err)
	}

	var tariffs *service.TariffService
	var calcOpts []service.CalculatorOption

	repo := repoOrNil(dbComponents)
	if cfg.Cache.Size > 0 {
		cache := service.NewQuoteCache(cfg.Cache.Size, cfg.Cache.TTL)
		tariffs = service.NewTariffService(repo, cache)
		calcOpts = append(calcOpts, service.WithQuoteCache(cache))
	} else {
		tariffs = service.NewTariffService(repo, nil)
	}

	if err := bootstrapTariffs(tariffs, cfg.Tariffs); err != nil {
		return nil, err
	}

	calculator := service.NewRateCalculator(tariffs, pricing, calcOpts...)

	return &ServiceComponents{
		Tariffs: tariffs,
		Quoter:  calculator,
	}, nil
}

// bootstrapTariffs installs the initial table. A database table wins; the
// seed file fills in when the database has none. Starting without any table
// is allowed: quotes answer 503 until the first upload.
func bootstrapTariffs(tariffs *service.TariffService, cfg config.TariffsConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := tariffs.Bootstrap(ctx); err != nil {
		log.Warn().Err(err).Msg("Could not load tariff table from database")
	}

	if _, err := tariffs.Active(); err == nil {
		return nil
	}

	if cfg.SeedFile == "" {
		log.Warn().Msg("No tariff table installed; quotes unavailable until first upload")
		return nil
	}

	if err := tariffs.LoadFromFile(cfg.SeedFile); err != nil {
		return fmt.Errorf("loading tariff seed file: %w", err)
	}
	return nil
}

// buildPricingConfig converts the string-typed rate settings to decimals.
func buildPricingConfig(cfg config.PricingConfig) (service.PricingConfig, error) {
	fuel, err := decimal.NewFromString(cfg.FuelSurchargeRate)
	if err != nil {
		return service.PricingConfig{}, fmt.Errorf("invalid FUEL_SURCHARGE_RATE %q: %w", cfg.FuelSurchargeRate, err)
	}
	fee, err := decimal.NewFromString(cfg.FixedFee)
	if err != nil {
		return service.PricingConfig{}, fmt.Errorf("invalid FIXED_FEE %q: %w", cfg.FixedFee, err)
	}
	vat, err := decimal.NewFromString(cfg.VATRate)
	if err != nil {
		return service.PricingConfig{}, fmt.Errorf("invalid VAT_RATE %q: %w", cfg.VATRate, err)
	}

	return service.PricingConfig{
		MaxPalletKg:       cfg.MaxPalletKg,
		MarginFactor:      cfg.MarginFactor,
		DefaultGrams:      cfg.DefaultGrams,
		FuelSurchargeRate: fuel,
		FixedFee:          fee,
		VATRate:           vat,
	}, nil
}

func repoOrNil(dbComponents *DatabaseComponents) repository.TariffRepositoryInterface {
	if dbComponents == nil {
		return nil
	}
	return dbComponents.TariffRepo
}
