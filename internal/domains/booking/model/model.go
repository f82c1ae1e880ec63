package model

import (
	"time"

	guestModel "hotel/internal/domains/guest/model"
	"hotel/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldGuestID       = "guest_id"
	FieldRoomID        = "room_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldStatus        = "status"
	FieldPricePerNight = "price_per_night"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Booking holds one guest's claim on one room for the nights [CheckIn, CheckOut).
// PricePerNight is copied from the room when the booking is created and never changes.
type Booking struct {
	ID            string    `db:"id"`
	GuestID       string    `db:"guest_id"`
	RoomID        string    `db:"room_id"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	Status        Status    `db:"status"`
	PricePerNight float64   `db:"price_per_night"`
	GuestName     string    `column:"name"  db:"guest_name"  table:"guests"`
	GuestEmail    string    `column:"email" db:"guest_email" table:"guests"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN " + guestModel.TableName + " ON " + guestModel.TableName + ".id = " + TableName + ".guest_id"
}
