package model

import "hotel/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room type"

	FieldID        = "id"
	FieldName      = "name"
	FieldPrice     = "price"
	FieldMaxGuests = "max_guests"
	FieldImage     = "image"
)

// RoomType describes a class of rooms. MaxGuests is the number of Active bookings a room of this type
// may hold for any single night.
type RoomType struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	MaxGuests int     `db:"max_guests"`
	Image     string  `db:"image"`
	model.Metadata
}
