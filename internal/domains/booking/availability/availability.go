// Package availability holds the capacity rules that decide whether a room can take another booking.
//
// A room admits up to MaxGuests Active bookings whose stays overlap. Stays are half-open
// ranges of days, so a guest checking out on the morning another checks in never collides.
package availability

import (
	"time"

	"hotel/shared/failure"
	"hotel/shared/timezone"
)

// Stay is the half-open range of nights [CheckIn, CheckOut).
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewStay normalises both ends to calendar days and rejects empty or inverted ranges.
func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	stay := Stay{
		CheckIn:  timezone.Day(checkIn),
		CheckOut: timezone.Day(checkOut),
	}

	if err := stay.Validate(); err != nil {
		return Stay{}, err
	}

	return stay, nil
}

// Validate fails with failure.ErrInvalidDateRange unless CheckOut is strictly after CheckIn.
func (s Stay) Validate() error {
	if !s.CheckOut.After(s.CheckIn) {
		return failure.ErrInvalidDateRange
	}

	return nil
}

// Overlaps reports whether the two stays share at least one night.
func (s Stay) Overlaps(other Stay) bool {
	return other.CheckOut.After(s.CheckIn) && other.CheckIn.Before(s.CheckOut)
}

// Decision is the outcome of admitting one more booking into a room.
type Decision struct {
	Overlapping int
	MaxGuests   int
	// FillsRoom is set when the new booking takes the last free place for at least one night.
	FillsRoom bool
}

// Admit checks whether a room that already holds overlapping Active bookings can take one more.
func Admit(overlapping, maxGuests int) (Decision, error) {
	decision := Decision{
		Overlapping: overlapping,
		MaxGuests:   maxGuests,
	}

	if overlapping >= maxGuests {
		return decision, failure.ErrRoomUnavailable
	}

	decision.FillsRoom = overlapping+1 >= maxGuests

	return decision, nil
}

// Remaining is the number of further overlapping bookings the room can take. It never goes below zero.
func Remaining(overlapping, maxGuests int) int {
	return max(maxGuests-overlapping, 0)
}

// Release decides whether a room becomes free once a booking stops being Active.
// Without recheck the room is always freed. With recheck it is freed only when the
// bookings still overlapping the released stay leave at least one place open.
func Release(recheck bool, stillOverlapping, maxGuests int) bool {
	if !recheck {
		return true
	}

	return stillOverlapping < maxGuests
}
