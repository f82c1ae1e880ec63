package dto

import (
	"time"

	"hotel/internal/domains/guestservice/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestServiceRequest struct {
	GuestID   string `json:"guest_id"   validate:"required,uuid"`
	ServiceID string `json:"service_id" validate:"required,uuid"`
	UsedOn    string `json:"used_on"    validate:"omitempty,date"`
}

// ToModel dates the record today when UsedOn is empty.
func (c *CreateGuestServiceRequest) ToModel(operator string) (model.GuestService, error) {
	usedOn := timezone.Today()

	if c.UsedOn != "" {
		day, err := timezone.ParseDay(c.UsedOn)
		if err != nil {
			return model.GuestService{}, err //nolint:wrapcheck
		}

		usedOn = day
	}

	return model.GuestService{
		ID:        uuid.NewString(),
		GuestID:   c.GuestID,
		ServiceID: c.ServiceID,
		UsedOn:    usedOn,
		Metadata:  gModel.NewMetadata(timezone.Now(), operator),
	}, nil
}

type UpdateGuestServiceRequest struct {
	GuestID   string    `db:"guest_id"   json:"guest_id"   validate:"omitempty,uuid"`
	ServiceID string    `db:"service_id" json:"service_id" validate:"omitempty,uuid"`
	UsedOn    string    `json:"used_on"  validate:"omitempty,date"`
	UsedOnDay time.Time `db:"used_on"    json:"-"`
}

type GuestServiceResponse struct {
	ID           string  `json:"id"`
	GuestID      string  `json:"guest_id"`
	GuestName    string  `json:"guest_name"`
	ServiceID    string  `json:"service_id"`
	ServiceName  string  `json:"service_name"`
	ServicePrice float64 `json:"service_price"`
	UsedOn       string  `json:"used_on"`
	gDto.Metadata
}

func (r *GuestServiceResponse) FromModel(model model.GuestService) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.GuestName = model.GuestName
	r.ServiceID = model.ServiceID
	r.ServiceName = model.ServiceName
	r.ServicePrice = model.ServicePrice
	r.UsedOn = model.UsedOn.Format(constant.DayFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestServicesResponse struct {
	GuestServices []GuestServiceResponse `json:"guest_services"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetGuestServicesResponse) FromModels(models []model.GuestService, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.GuestServices = make([]GuestServiceResponse, len(models))
	for i, mod := range models {
		r.GuestServices[i].FromModel(mod)
	}
}
