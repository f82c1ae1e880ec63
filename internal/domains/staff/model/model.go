package model

import (
	positionModel "hotel/internal/domains/position/model"
	"hotel/shared/model"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID         = "id"
	FieldName       = "name"
	FieldPositionID = "position_id"
	FieldPhone      = "phone"
	FieldSalary     = "salary"
	FieldHotelID    = "hotel_id"
)

type Staff struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	PositionID    string  `db:"position_id"`
	Phone         string  `db:"phone"`
	Salary        float64 `db:"salary"`
	HotelID       string  `db:"hotel_id"`
	PositionTitle string  `column:"title" db:"position_title" table:"positions"`
	model.Metadata
}

func (Staff) GetJoinQuery() string {
	return "LEFT JOIN " + positionModel.TableName + " ON " + positionModel.TableName + ".id = " + TableName + ".position_id"
}

