package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg)
	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeNotifier()

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Notifier stopped")
	}

	log.Info().Msg("Notifier shut down")
}
