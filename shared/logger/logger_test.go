package logger_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"hotel/config"
	"hotel/shared/constant"
	"hotel/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preserveLogger(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	preserveLogger(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	preserveLogger(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("room lock timed out"))

	assert.Contains(t, buf.String(), "room lock timed out")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "trace level", logLevel: "trace", expectedLevel: zerolog.TraceLevel},
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "warn level", logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "disabled level", logLevel: "disabled", expectedLevel: zerolog.Disabled},
		{name: "invalid level defaults to trace", logLevel: "invalid_level", expectedLevel: zerolog.TraceLevel},
		{name: "empty level defaults to trace", logLevel: "", expectedLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preserveLogger(t)

			var buf bytes.Buffer
			log.Logger = log.Output(&buf)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestSetOutput_WritesRotatingFile(t *testing.T) {
	preserveLogger(t)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	path := filepath.Join(t.TempDir(), "hotel.log")

	cfg := &config.Config{}
	cfg.App.Name = "hotel"
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.Server.LogFile.Path = path
	cfg.Server.LogFile.MaxSizeMB = 1

	logger.SetOutput(cfg)
	log.Info().Str("booking_id", "b-1").Msg("booking created")

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), `"booking_id":"b-1"`)
	assert.Contains(t, string(content), `"app":"hotel"`)
	assert.Contains(t, string(content), "booking created")
}
