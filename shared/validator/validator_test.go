package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
)

type guestRequest struct {
	Name    string `json:"name"     validate:"required"`
	Email   string `json:"email"    validate:"omitempty,email"`
	Age     int    `json:"age"      validate:"gte=0,lte=120"`
	CheckIn string `json:"check_in" validate:"required,date"`
	Method  string `json:"method"   validate:"omitempty,oneof=cash card"`
}

func validGuest() guestRequest {
	return guestRequest{
		Name:    "Olena",
		Email:   "olena@example.com",
		Age:     30,
		CheckIn: "2025-06-01",
		Method:  "card",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *guestRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(_ *guestRequest) {},
		},
		{
			name:    "missing name",
			mutate:  func(r *guestRequest) { r.Name = "" },
			wantErr: "Name is required",
		},
		{
			name:    "invalid email",
			mutate:  func(r *guestRequest) { r.Email = "olena" },
			wantErr: "Email must be a valid email address",
		},
		{
			name:    "age above limit",
			mutate:  func(r *guestRequest) { r.Age = 121 },
			wantErr: "Age must be less than or equal to 120",
		},
		{
			name:    "date with time part",
			mutate:  func(r *guestRequest) { r.CheckIn = "2025-06-01T10:00:00Z" },
			wantErr: "CheckIn must be a date formatted as YYYY-MM-DD",
		},
		{
			name:    "impossible date",
			mutate:  func(r *guestRequest) { r.CheckIn = "2025-02-30" },
			wantErr: "CheckIn must be a date formatted as YYYY-MM-DD",
		},
		{
			name:    "unknown payment method",
			mutate:  func(r *guestRequest) { r.Method = "crypto" },
			wantErr: "Method must be one of cash card",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validGuest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid body",
			body: `{"name":"Olena","age":30,"check_in":"2025-06-01"}`,
		},
		{
			name:    "malformed body",
			body:    `{"name":`,
			wantErr: true,
		},
		{
			name:    "empty object",
			body:    `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req guestRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Olena", req.Name)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-06-03", "date"))
	assert.Error(t, validator.ValidateVar("03/06/2025", "date"))
	assert.NoError(t, validator.ValidateVar("active", "oneof=active cancelled completed"))
	assert.Error(t, validator.ValidateVar("pending", "oneof=active cancelled completed"))
}
