package timezone

import (
	"time"

	"hotel/config"

	"github.com/rs/zerolog/log"
)

const dayLayout = "2006-01-02"

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Europe/Kyiv', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		return time.Now().UTC()
	}

	return time.Now().In(appLocation)
}

// Today returns the current calendar day in the application timezone as a UTC midnight.
func Today() time.Time {
	return Day(Now())
}

// Day drops the clock part of t and keeps only its calendar date, anchored at UTC midnight.
// Booking dates are compared and subtracted as Days so DST shifts never change a night count.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a Day.
func ParseDay(value string) (time.Time, error) {
	t, err := time.Parse(dayLayout, value)
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	return Day(t), nil
}

// FormatDay formats a Day as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		return t.UTC()
	}

	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
