package model

import (
	"time"

	amenityModel "hotel/internal/domains/amenity/model"
	guestModel "hotel/internal/domains/guest/model"
	"hotel/shared/model"
)

const (
	TableName  = "guest_services"
	EntityName = "guest service"

	FieldID        = "id"
	FieldGuestID   = "guest_id"
	FieldServiceID = "service_id"
	FieldUsedOn    = "used_on"
)

// GuestService records one use of a service by a guest.
type GuestService struct {
	ID           string    `db:"id"`
	GuestID      string    `db:"guest_id"`
	ServiceID    string    `db:"service_id"`
	UsedOn       time.Time `db:"used_on"`
	GuestName    string    `column:"name"  db:"guest_name"    table:"guests"`
	ServiceName  string    `column:"name"  db:"service_name"  table:"services"`
	ServicePrice float64   `column:"price" db:"service_price" table:"services"`
	model.Metadata
}

func (GuestService) GetJoinQuery() string {
	return "LEFT JOIN " + guestModel.TableName + " ON " + guestModel.TableName + ".id = " + TableName + ".guest_id " +
		"LEFT JOIN " + amenityModel.TableName + " ON " + amenityModel.TableName + ".id = " + TableName + ".service_id"
}
