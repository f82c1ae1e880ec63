package dto

import (
	"hotel/internal/domains/staff/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Name       string  `json:"name"        validate:"required,max=100"`
	PositionID string  `json:"position_id" validate:"required,uuid"`
	Phone      string  `json:"phone"       validate:"omitempty,max=20"`
	Salary     float64 `json:"salary"      validate:"gte=0"`
	HotelID    string  `json:"hotel_id"    validate:"omitempty,uuid"`
}

func (c *CreateStaffRequest) ToModel(operator, hotelID string) model.Staff {
	return model.Staff{
		ID:         uuid.NewString(),
		Name:       c.Name,
		PositionID: c.PositionID,
		Phone:      c.Phone,
		Salary:     c.Salary,
		HotelID:    hotelID,
		Metadata:   gModel.NewMetadata(timezone.Now(), operator),
	}
}

type UpdateStaffRequest struct {
	Name       string   `db:"name"        json:"name"        validate:"omitempty,max=100"`
	PositionID string   `db:"position_id" json:"position_id" validate:"omitempty,uuid"`
	Phone      string   `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	Salary     *float64 `db:"salary"      json:"salary"      validate:"omitempty,gte=0"`
}

type StaffResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PositionID    string  `json:"position_id"`
	PositionTitle string  `json:"position_title"`
	Phone         string  `json:"phone"`
	Salary        float64 `json:"salary"`
	HotelID       string  `json:"hotel_id"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Name = model.Name
	r.PositionID = model.PositionID
	r.PositionTitle = model.PositionTitle
	r.Phone = model.Phone
	r.Salary = model.Salary
	r.HotelID = model.HotelID
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
