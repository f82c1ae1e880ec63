package dto

import (
	"hotel/internal/domains/payment/billing"
	"hotel/internal/domains/payment/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"
)

type RecordPaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Method    string `json:"method"     validate:"required,oneof=cash card"`
}

// UpdatePaymentRequest corrects a recorded payment.
type UpdatePaymentRequest struct {
	Amount *float64 `db:"amount"  json:"amount"  validate:"omitempty,gte=0"`
	PaidOn string   `json:"paid_on" validate:"omitempty,date"`
	Method string   `db:"method"  json:"method"  validate:"omitempty,oneof=cash card"`
}

type PaymentResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	PaidOn    string  `json:"paid_on"`
	Method    string  `json:"method"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.PaidOn = timezone.FormatDay(model.PaidOn)
	r.Method = string(model.Method)
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

// ChargeResponse itemises what a booking costs.
type ChargeResponse struct {
	BookingID     string  `json:"booking_id"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"price_per_night"`
	RoomCost      float64 `json:"room_cost"`
	ServiceCost   float64 `json:"service_cost"`
	Total         float64 `json:"total"`
}

func (r *ChargeResponse) FromCharge(bookingID string, charge billing.Charge) {
	r.BookingID = bookingID
	r.Nights = charge.Nights
	r.PricePerNight = charge.PricePerNight
	r.RoomCost = charge.RoomCost
	r.ServiceCost = charge.ServiceCost
	r.Total = charge.Total
}

// UnpaidBookingResponse is an Active booking without a payment and what it would cost now.
type UnpaidBookingResponse struct {
	BookingID string  `json:"booking_id"`
	GuestID   string  `json:"guest_id"`
	GuestName string  `json:"guest_name"`
	RoomID    string  `json:"room_id"`
	CheckIn   string  `json:"check_in"`
	CheckOut  string  `json:"check_out"`
	Total     float64 `json:"total"`
}
