package main

import (
	"context"
	"os"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg)
	logger.SetLogLevel(cfg)

	if err := di.InitializeConsole().Execute(context.Background(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
