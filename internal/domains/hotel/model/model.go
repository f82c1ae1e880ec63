package model

import "hotel/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID   = "id"
	FieldName = "name"
	FieldCity = "city"
)

type Hotel struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	City    string `db:"city"`
	Address string `db:"address"`
	model.Metadata
}
