package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number     string `json:"number"       validate:"required,max=20"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Status     string `json:"status"       validate:"omitempty,oneof=free occupied under_maintenance"`
}

// ToModel copies the nightly price from the room type. A room starts Free unless told otherwise.
func (c *CreateRoomRequest) ToModel(operator string, price float64) model.Room {
	status := model.StatusFree
	if c.Status != "" {
		status = model.Status(c.Status)
	}

	return model.Room{
		ID:         uuid.NewString(),
		Number:     c.Number,
		RoomTypeID: c.RoomTypeID,
		Status:     status,
		Price:      price,
		Metadata:   gModel.NewMetadata(timezone.Now(), operator),
	}
}

// UpdateRoomRequest changes a room. A new room type also resets the price to that type's price
// unless Price is given explicitly.
type UpdateRoomRequest struct {
	Number     string   `db:"number"          json:"number"          validate:"omitempty,max=20"`
	RoomTypeID string   `db:"room_type_id"    json:"room_type_id"    validate:"omitempty,uuid"`
	Status     string   `db:"status"          json:"status"          validate:"omitempty,oneof=free occupied under_maintenance"`
	Price      *float64 `db:"price_per_night" json:"price_per_night" validate:"omitempty,gte=0"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	Number        string  `json:"number"`
	RoomTypeID    string  `json:"room_type_id"`
	TypeName      string  `json:"type_name"`
	MaxGuests     int     `json:"max_guests"`
	Status        string  `json:"status"`
	PricePerNight float64 `json:"price_per_night"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.RoomTypeID = model.RoomTypeID
	r.TypeName = model.TypeName
	r.MaxGuests = model.MaxGuests
	r.Status = string(model.Status)
	r.PricePerNight = model.Price
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
