package model

import "hotel/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID    = "id"
	FieldName  = "name"
	FieldPrice = "price"
)

// Amenity is an extra the hotel sells to guests, stored in the services table.
type Amenity struct {
	ID    string  `db:"id"`
	Name  string  `db:"name"`
	Price float64 `db:"price"`
	model.Metadata
}
