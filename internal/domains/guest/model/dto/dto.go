package dto

import (
	"hotel/internal/domains/guest/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Age      int    `json:"age"      validate:"gte=0,lte=120"`
	Phone    string `json:"phone"    validate:"omitempty,max=20"`
	Email    string `json:"email"    validate:"omitempty,email,max=100"`
	Passport string `json:"passport" validate:"omitempty,max=20"`
}

func (c *CreateGuestRequest) ToModel(operator string) model.Guest {
	return model.Guest{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Age:      c.Age,
		Phone:    c.Phone,
		Email:    c.Email,
		Passport: c.Passport,
		Metadata: gModel.NewMetadata(timezone.Now(), operator),
	}
}

type UpdateGuestRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Age      *int   `db:"age"      json:"age"      validate:"omitempty,gte=0,lte=120"`
	Phone    string `db:"phone"    json:"phone"    validate:"omitempty,max=20"`
	Email    string `db:"email"    json:"email"    validate:"omitempty,email,max=100"`
	Passport string `db:"passport" json:"passport" validate:"omitempty,max=20"`
}

type GuestResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Passport string `json:"passport"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Age = model.Age
	r.Phone = model.Phone
	r.Email = model.Email
	r.Passport = model.Passport
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
