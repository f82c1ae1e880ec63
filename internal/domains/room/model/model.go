package model

import (
	roomTypeModel "hotel/internal/domains/roomtype/model"
	"hotel/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldNumber     = "number"
	FieldRoomTypeID = "room_type_id"
	FieldStatus     = "status"
	FieldPrice      = "price_per_night"
)

type Status string

const (
	StatusFree             Status = "free"
	StatusOccupied         Status = "occupied"
	StatusUnderMaintenance Status = "under_maintenance"
)

func (s Status) Valid() bool {
	switch s {
	case StatusFree, StatusOccupied, StatusUnderMaintenance:
		return true
	default:
		return false
	}
}

// Room carries the capacity of its type so a single locked read is enough to evaluate availability.
type Room struct {
	ID         string  `db:"id"`
	Number     string  `db:"number"`
	RoomTypeID string  `db:"room_type_id"`
	Status     Status  `db:"status"`
	Price      float64 `db:"price_per_night"`
	TypeName   string  `column:"name"       db:"type_name"  table:"room_types"`
	MaxGuests  int     `column:"max_guests" db:"max_guests" table:"room_types"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "LEFT JOIN " + roomTypeModel.TableName + " ON " + roomTypeModel.TableName + ".id = " + TableName + ".room_type_id"
}
