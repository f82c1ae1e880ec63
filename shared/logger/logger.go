package logger

import (
	"io"
	"os"
	"time"

	"hotel/config"
	"hotel/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

// SetOutput switches the logger to JSON outside development and tees it into
// a rotating file when a log file path is configured.
func SetOutput(cfg *config.Config) {
	writers := []io.Writer{}

	if cfg.Server.Env == constant.ServerEnvProduction {
		writers = append(writers, os.Stdout)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if cfg.Server.LogFile.Path != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.Server.LogFile.Path,
			MaxSize:    cfg.Server.LogFile.MaxSizeMB,
			MaxBackups: cfg.Server.LogFile.MaxBackups,
			MaxAge:     cfg.Server.LogFile.MaxAgeDays,
			Compress:   cfg.Server.LogFile.Compress,
		})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Str("app", cfg.App.Name).Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == "" {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
