package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldAmount    = "amount"
	FieldPaidOn    = "paid_on"
	FieldMethod    = "method"
)

type Method string

const (
	MethodCash Method = "cash"
	MethodCard Method = "card"
)

func (m Method) Valid() bool {
	return m == MethodCash || m == MethodCard
}

// Payment settles a booking. A booking has at most one payment.
type Payment struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	Amount    float64   `db:"amount"`
	PaidOn    time.Time `db:"paid_on"`
	Method    Method    `db:"method"`
	model.Metadata
}
