// Package timezone provides time helpers for the application.
//
// Wall-clock values (audit metadata, payment timestamps) use the configured
// application timezone:
//
//	now := timezone.Now()
//	formatted := timezone.Format(now, time.RFC3339)
//
// Booking dates are calendar days. They are kept as UTC midnights so that
// comparing or subtracting two of them never depends on daylight saving:
//
//	checkIn, err := timezone.ParseDay("2025-06-01")
//	nights := int(checkOut.Sub(checkIn).Hours() / 24)
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is initialized when the package is imported.
package timezone
