package failure

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation = "23505"
	pqFkViolation     = "23503"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}

// Booking and billing rule violations. Compare with errors.Is.
var (
	ErrInvalidDateRange = &Failure{Code: http.StatusBadRequest, Message: "check-out date must be after check-in date"}
	ErrRoomUnavailable  = &Failure{Code: http.StatusConflict, Message: "room is fully booked for the requested period"}
	ErrDuplicatePayment = &Failure{Code: http.StatusConflict, Message: "booking has already been paid"}
	ErrInactiveBooking  = &Failure{Code: http.StatusUnprocessableEntity, Message: "booking is not active"}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// Unprocessable returns a new Failure for requests that are well formed but break a business rule.
func Unprocessable(message string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	}
}

// FromPostgres turns unique and foreign key violations into a Conflict carrying conflictMessage.
// Other errors are returned untouched.
func FromPostgres(err error, conflictMessage string) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case pqUniqueViolation, pqFkViolation:
		return Conflict(conflictMessage)
	default:
		return err
	}
}

// IsUniqueViolation reports whether err comes from a unique constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}

// IsNotFound reports whether err carries a not found code.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
