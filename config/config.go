package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	FreeRoomPolicyUnconditional = "unconditional"
	FreeRoomPolicyRecheck       = "recheck"

	ServiceScopeAll  = "all"
	ServiceScopeStay = "stay"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		LogFile  struct {
			Path       string `envconfig:"PATH"`
			MaxSizeMB  int    `envconfig:"MAX_SIZE_MB"    default:"50"`
			MaxBackups int    `envconfig:"MAX_BACKUPS"    default:"5"`
			MaxAgeDays int    `envconfig:"MAX_AGE_DAYS"   default:"30"`
			Compress   bool   `envconfig:"COMPRESS"`
		} `envconfig:"LOG_FILE"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"hotel"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		Booking struct {
			FreeRoomPolicy string `envconfig:"FREE_ROOM_POLICY" default:"unconditional"`
		} `envconfig:"BOOKING"`
		Billing struct {
			ServiceScope string `envconfig:"SERVICE_SCOPE" default:"all"`
		} `envconfig:"BILLING"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			MigrationPath  string `envconfig:"MIGRATION_PATH" default:"file://migrations/postgres"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP" default:"hotel-notifier"`
		Topic         string   `envconfig:"TOPIC"          default:"hotel.events"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	Mail struct {
		Host     string `envconfig:"HOST"`
		Port     int    `envconfig:"PORT" default:"587"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		From     string `envconfig:"FROM"`
	} `envconfig:"MAIL"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			Endpoint   string `envconfig:"ENDPOINT"`
			Region     string `envconfig:"REGION"`
			AccessKey  string `envconfig:"ACCESS_KEY"`
			SecretKey  string `envconfig:"SECRET_KEY"`
			BucketName string `envconfig:"BUCKET_NAME"`
			PublicURL  string `envconfig:"PUBLIC_URL"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}

// RecheckOnFree reports whether releasing a booking should recount the
// remaining overlapping bookings before the room is set back to free.
func (c *Config) RecheckOnFree() bool {
	return c.App.Booking.FreeRoomPolicy == FreeRoomPolicyRecheck
}

// BillStayOnly reports whether only services used during the stay are billed.
func (c *Config) BillStayOnly() bool {
	return c.App.Billing.ServiceScope == ServiceScopeStay
}
