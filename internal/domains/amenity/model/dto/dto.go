package dto

import (
	"hotel/internal/domains/amenity/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateAmenityRequest struct {
	Name  string  `json:"name"  validate:"required,max=100"`
	Price float64 `json:"price" validate:"gte=0"`
}

func (c *CreateAmenityRequest) ToModel(operator string) model.Amenity {
	return model.Amenity{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Price:    c.Price,
		Metadata: gModel.NewMetadata(timezone.Now(), operator),
	}
}

type UpdateAmenityRequest struct {
	Name  string   `db:"name"  json:"name"  validate:"omitempty,max=100"`
	Price *float64 `db:"price" json:"price" validate:"omitempty,gte=0"`
}

type AmenityResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	gDto.Metadata
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Name = model.Name
	r.Price = model.Price
	r.Metadata.FromModel(model.Metadata)
}

type GetAmenitiesResponse struct {
	Services  []AmenityResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]AmenityResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
