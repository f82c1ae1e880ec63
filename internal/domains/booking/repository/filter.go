package repository

import (
	"time"

	"hotel/internal/domains/booking/model"
	gDto "hotel/shared/dto"
)

// OverlapFilter matches the Active bookings of a room whose stay shares a night with [checkIn, checkOut).
func OverlapFilter(roomID string, checkIn, checkOut time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{}.And(
		gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    roomID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStatus,
			Value:    string(model.StatusActive),
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "stay_check_in",
			Field:    model.FieldCheckOut,
			Value:    checkIn,
			Operator: gDto.FilterOperatorGreater,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "stay_check_out",
			Field:    model.FieldCheckIn,
			Value:    checkOut,
			Operator: gDto.FilterOperatorLess,
			Table:    model.TableName,
		},
	)
}
