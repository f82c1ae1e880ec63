package dto

import (
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"
)

type CreateBookingRequest struct {
	GuestID  string `json:"guest_id"  validate:"required,uuid"`
	RoomID   string `json:"room_id"   validate:"required,uuid"`
	CheckIn  string `json:"check_in"  validate:"required,date"`
	CheckOut string `json:"check_out" validate:"required,date"`
}

// UpdateBookingRequest edits status and dates. Empty fields keep their stored value.
type UpdateBookingRequest struct {
	Status   string `json:"status"    validate:"omitempty,oneof=active cancelled completed"`
	CheckIn  string `json:"check_in"  validate:"omitempty,date"`
	CheckOut string `json:"check_out" validate:"omitempty,date"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	GuestID       string  `json:"guest_id"`
	GuestName     string  `json:"guest_name"`
	RoomID        string  `json:"room_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Status        string  `json:"status"`
	PricePerNight float64 `json:"price_per_night"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.GuestName = model.GuestName
	r.RoomID = model.RoomID
	r.CheckIn = timezone.FormatDay(model.CheckIn)
	r.CheckOut = timezone.FormatDay(model.CheckOut)
	r.Status = string(model.Status)
	r.PricePerNight = model.PricePerNight
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityRequest struct {
	CheckIn  string `json:"check_in"  validate:"required,date"`
	CheckOut string `json:"check_out" validate:"required,date"`
}

type AvailabilityResponse struct {
	RoomID      string `json:"room_id"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Overlapping int    `json:"overlapping"`
	MaxGuests   int    `json:"max_guests"`
	Remaining   int    `json:"remaining"`
	Available   bool   `json:"available"`
	RoomStatus  string `json:"room_status"`
}
