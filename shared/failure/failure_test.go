package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotel/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "guest name is required"}

	assert.Equal(t, "guest name is required", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{name: "InvalidPageParam", failure: failure.InvalidPageParam, code: http.StatusBadRequest},
		{name: "InvalidLimitParam", failure: failure.InvalidLimitParam, code: http.StatusBadRequest},
		{name: "ErrInvalidDateRange", failure: failure.ErrInvalidDateRange, code: http.StatusBadRequest},
		{name: "ErrRoomUnavailable", failure: failure.ErrRoomUnavailable, code: http.StatusConflict},
		{name: "ErrDuplicatePayment", failure: failure.ErrDuplicatePayment, code: http.StatusConflict},
		{name: "ErrInactiveBooking", failure: failure.ErrInactiveBooking, code: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.Equal(t, tt.code, failure.GetCode(fmt.Errorf("wrapped: %w", tt.failure)))
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		expected string
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("bad date")), code: http.StatusBadRequest, expected: "bad date"},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("no fields"), code: http.StatusBadRequest, expected: "no fields"},
		{name: "InternalError", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError, expected: "db down"},
		{name: "NotFound", err: failure.NotFound("room"), code: http.StatusNotFound, expected: "room"},
		{name: "Conflict", err: failure.Conflict("room number already exists"), code: http.StatusConflict, expected: "room number already exists"},
		{name: "Unprocessable", err: failure.Unprocessable("booking is not active"), code: http.StatusUnprocessableEntity, expected: "booking is not active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.expected)
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("boom")))
	assert.True(t, failure.IsNotFound(failure.NotFound("guest")))
	assert.False(t, failure.IsNotFound(errors.New("boom")))
}

func TestFromPostgres(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{name: "unique violation", err: &pq.Error{Code: "23505"}, conflict: true},
		{name: "foreign key violation", err: fmt.Errorf("delete: %w", &pq.Error{Code: "23503"}), conflict: true},
		{name: "other postgres error", err: &pq.Error{Code: "40001"}},
		{name: "plain error", err: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.FromPostgres(tt.err, "room has bookings and cannot be deleted")

			if tt.conflict {
				assert.Equal(t, http.StatusConflict, failure.GetCode(err))
				assert.EqualError(t, err, "room has bookings and cannot be deleted")

				return
			}

			assert.Equal(t, tt.err, err)
		})
	}

	assert.True(t, failure.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, failure.IsUniqueViolation(&pq.Error{Code: "23503"}))
}
