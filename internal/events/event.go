// Package events carries booking lifecycle notifications between the API and the notifier.
package events

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeBookingCreated   Type = "booking.created"
	TypeBookingCancelled Type = "booking.cancelled"
	TypePaymentRecorded  Type = "payment.recorded"
)

// Event is the JSON payload published for every booking or payment change worth telling the guest about.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	BookingID  string    `json:"booking_id"`
	GuestID    string    `json:"guest_id"`
	GuestName  string    `json:"guest_name"`
	GuestEmail string    `json:"guest_email"`
	RoomID     string    `json:"room_id"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Amount     float64   `json:"amount,omitempty"`
	Method     string    `json:"method,omitempty"`
}

// New stamps an event of the given type with a fresh ID.
func New(eventType Type, occurredAt time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: occurredAt,
	}
}
