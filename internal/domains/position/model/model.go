package model

import "hotel/shared/model"

const (
	TableName  = "positions"
	EntityName = "position"

	FieldID         = "id"
	FieldTitle      = "title"
	FieldLevel      = "level"
	FieldDepartment = "department"
)

type Position struct {
	ID         string `db:"id"`
	Title      string `db:"title"`
	Level      string `db:"level"`
	Department string `db:"department"`
	model.Metadata
}
