package main

import (
	"concierge/config"
	"concierge/di"
	"concierge/helper"
	"concierge/shared/logger"
	"concierge/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Concierge API
// @version 1.0
// @description Hotel guest services: requests, chat, bookings and the guest-facing catalog.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)
	timezone.Set(cfg.App.Timezone)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
