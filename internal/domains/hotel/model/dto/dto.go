package dto

import (
	"hotel/internal/domains/hotel/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	City    string `json:"city"    validate:"required,max=100"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

func (c *CreateHotelRequest) ToModel(operator string) model.Hotel {
	return model.Hotel{
		ID:       uuid.NewString(),
		Name:     c.Name,
		City:     c.City,
		Address:  c.Address,
		Metadata: gModel.NewMetadata(timezone.Now(), operator),
	}
}

type UpdateHotelRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	City    string `db:"city"    json:"city"    validate:"omitempty,max=100"`
	Address string `db:"address" json:"address" validate:"omitempty,max=255"`
}

type HotelResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.City = model.City
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}
