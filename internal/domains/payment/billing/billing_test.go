package billing_test

import (
	"testing"
	"time"

	"hotel/internal/domains/payment/billing"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "three nights",
			checkIn:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
			want:     3,
		},
		{
			name:     "across a month boundary",
			checkIn:  time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC),
			want:     3,
		},
		{
			name:     "clock part does not add a night",
			checkIn:  time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "across a daylight saving change",
			checkIn:  time.Date(2025, 3, 29, 0, 0, 0, 0, time.FixedZone("EET", 2*60*60)),
			checkOut: time.Date(2025, 3, 31, 0, 0, 0, 0, time.FixedZone("EEST", 3*60*60)),
			want:     2,
		},
		{
			name:     "inverted",
			checkIn:  time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestCompute(t *testing.T) {
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	charge := billing.Compute(checkIn, checkOut, 150, 30, 25)

	assert.Equal(t, billing.Charge{
		Nights:        3,
		PricePerNight: 150,
		RoomCost:      450,
		ServiceCost:   55,
		Total:         505,
	}, charge)
}

func TestCompute_WithoutServices(t *testing.T) {
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	charge := billing.Compute(checkIn, checkOut, 80)

	assert.Equal(t, 160.0, charge.Total)
	assert.Zero(t, charge.ServiceCost)
}

func TestCompute_Deterministic(t *testing.T) {
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	services := []float64{12.5, 7.25, 40}

	first := billing.Compute(checkIn, checkOut, 99.9, services...)

	for range 10 {
		assert.Equal(t, first, billing.Compute(checkIn, checkOut, 99.9, services...))
	}
}
