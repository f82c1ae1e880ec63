package model

import "hotel/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID       = "id"
	FieldName     = "name"
	FieldAge      = "age"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldPassport = "passport"
)

type Guest struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Age      int    `db:"age"`
	Phone    string `db:"phone"`
	Email    string `db:"email"`
	Passport string `db:"passport"`
	model.Metadata
}
