package dto

import (
	"mime/multipart"

	"hotel/internal/domains/roomtype/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	Name      string                `json:"name"       validate:"required,max=100"`
	Price     float64               `json:"price"      validate:"gte=0"`
	MaxGuests int                   `json:"max_guests" validate:"gte=1"`
	Image     *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile multipart.File        `json:"-"`
}

func (c *CreateRoomTypeRequest) ToModel(operator, imageURL string) model.RoomType {
	return model.RoomType{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Price:     c.Price,
		MaxGuests: c.MaxGuests,
		Image:     imageURL,
		Metadata:  gModel.NewMetadata(timezone.Now(), operator),
	}
}

type UpdateRoomTypeRequest struct {
	Name      string                `db:"name"       json:"name"       validate:"omitempty,max=100"`
	Price     *float64              `db:"price"      json:"price"      validate:"omitempty,gte=0"`
	MaxGuests *int                  `db:"max_guests" json:"max_guests" validate:"omitempty,gte=1"`
	Image     *multipart.FileHeader `json:"image"    validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile multipart.File        `json:"-"`
}

type RoomTypeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	MaxGuests int     `json:"max_guests"`
	Image     string  `json:"image"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Price = model.Price
	r.MaxGuests = model.MaxGuests
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
