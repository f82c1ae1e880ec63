package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Hotel API
// @version 1.0
// @description Rooms, guests, bookings and payments of a single hotel.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg)
	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
