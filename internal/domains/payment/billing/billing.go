// Package billing prices a booking from the nights stayed and the services the guest used.
package billing

import (
	"time"

	"hotel/shared/constant"
	"hotel/shared/timezone"
)

// Charge is the itemised amount owed for one booking.
type Charge struct {
	Nights        int
	PricePerNight float64
	RoomCost      float64
	ServiceCost   float64
	Total         float64
}

// Nights counts whole nights between two calendar days. Inverted ranges count as zero.
func Nights(checkIn, checkOut time.Time) int {
	hours := timezone.Day(checkOut).Sub(timezone.Day(checkIn)).Hours()

	return max(int(hours/constant.HoursInDay), 0)
}

// Compute returns nights times the snapshot price plus the sum of servicePrices.
func Compute(checkIn, checkOut time.Time, pricePerNight float64, servicePrices ...float64) Charge {
	nights := Nights(checkIn, checkOut)

	serviceCost := 0.0
	for _, price := range servicePrices {
		serviceCost += price
	}

	roomCost := float64(nights) * pricePerNight

	return Charge{
		Nights:        nights,
		PricePerNight: pricePerNight,
		RoomCost:      roomCost,
		ServiceCost:   serviceCost,
		Total:         roomCost + serviceCost,
	}
}
