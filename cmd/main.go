// Package main is the entry point for the rate-service application.
//
// @title           Rate Service API
// @version         1.0.0
// @description     Shipping rate quote engine for pallet freight. Resolves the
//
//	destination province to a tariff region, aggregates item weights, splits the
//	load into pallets priced against per-region weight brackets, and applies
//	fuel surcharge and VAT.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/spedire/rate-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Rates
// @tag.description Shipping rate quote operations
//
// @tag.name        Tariffs
// @tag.description Tariff table administration
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/spedire/rate-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/spedire/rate-service/config"
	"github.com/spedire/rate-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
