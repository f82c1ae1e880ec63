package booking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/model/dto"
	bookingMocks "hotel/internal/domains/booking/service/mocks"
	paymentDto "hotel/internal/domains/payment/model/dto"
	paymentMocks "hotel/internal/domains/payment/service/mocks"
	"hotel/internal/handlers/booking"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	guestID = "3f1c2d4e-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
	roomID  = "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"
)

type fixture struct {
	bookingService *bookingMocks.MockBooking
	paymentService *paymentMocks.MockPayment
	router         chi.Router
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		bookingService: bookingMocks.NewMockBooking(ctrl),
		paymentService: paymentMocks.NewMockPayment(ctrl),
		router:         chi.NewRouter(),
	}

	handler := booking.New(f.bookingService, f.paymentService, otelMocks.NewOtel())
	handler.Router(f.router)

	return f
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	return rec
}

func TestCreateBooking(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setup        func(f fixture)
		expectedCode int
		contains     string
	}{
		{
			name: "created",
			body: `{"guest_id":"` + guestID + `","room_id":"` + roomID + `","check_in":"2024-03-01","check_out":"2024-03-04"}`,
			setup: func(f fixture) {
				f.bookingService.EXPECT().Create(gomock.Any(), dto.CreateBookingRequest{
					GuestID:  guestID,
					RoomID:   roomID,
					CheckIn:  "2024-03-01",
					CheckOut: "2024-03-04",
				}).Return(dto.BookingResponse{ID: "b-1", Status: "active"}, nil)
			},
			expectedCode: http.StatusCreated,
			contains:     `"id":"b-1"`,
		},
		{
			name:         "missing room",
			body:         `{"guest_id":"` + guestID + `","check_in":"2024-03-01","check_out":"2024-03-04"}`,
			setup:        func(fixture) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed json",
			body:         `{"guest_id":`,
			setup:        func(fixture) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "room full",
			body: `{"guest_id":"` + guestID + `","room_id":"` + roomID + `","check_in":"2024-03-01","check_out":"2024-03-04"}`,
			setup: func(f fixture) {
				f.bookingService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.ErrRoomUnavailable)
			},
			expectedCode: http.StatusConflict,
			contains:     failure.ErrRoomUnavailable.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			rec := f.do(http.MethodPost, "/bookings/", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestGetBookings_Filters(t *testing.T) {
	f := newFixture(t)

	f.bookingService.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
			assert.Equal(t, "bookings.check_in", params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			where, args := filter.GetWhereClause()
			assert.Equal(t, "(bookings.room_id = :room_id AND bookings.status = :status AND bookings.check_out > :from)", where)
			assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), args["from"])

			return dto.GetBookingsResponse{TotalData: 0, TotalPage: 1}, nil
		})

	rec := f.do(http.MethodGet, "/bookings/?room_id="+roomID+"&status=active&from=2024-03-01&sort_by=check_in", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetBookings_BadDate(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/bookings/?to=03/01/2024", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelBooking(t *testing.T) {
	f := newFixture(t)

	f.bookingService.EXPECT().Cancel(gomock.Any(), "b-1").Return(nil)
	f.bookingService.EXPECT().Cancel(gomock.Any(), "b-2").Return(failure.ErrInactiveBooking)

	rec := f.do(http.MethodPost, "/bookings/b-1/cancel", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/bookings/b-2/cancel", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetBookingCharge(t *testing.T) {
	f := newFixture(t)

	f.paymentService.EXPECT().Quote(gomock.Any(), "b-1").Return(paymentDto.ChargeResponse{
		BookingID:     "b-1",
		Nights:        3,
		PricePerNight: 150,
		RoomCost:      450,
		ServiceCost:   55,
		Total:         505,
	}, nil)

	rec := f.do(http.MethodGet, "/bookings/b-1/charge", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":505`)
	assert.Contains(t, rec.Body.String(), `"nights":3`)
}

func TestGetBookingCharge_Rejected(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "cancelled", err: failure.ErrInactiveBooking, expectedCode: http.StatusUnprocessableEntity},
		{name: "already paid", err: failure.ErrDuplicatePayment, expectedCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.paymentService.EXPECT().Quote(gomock.Any(), "b-1").Return(paymentDto.ChargeResponse{}, tt.err)

			rec := f.do(http.MethodGet, "/bookings/b-1/charge", "")

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.NotContains(t, rec.Body.String(), `"total"`)
		})
	}
}

func TestDeleteBooking_NotFound(t *testing.T) {
	f := newFixture(t)

	f.bookingService.EXPECT().Delete(gomock.Any(), "missing").Return(failure.NotFound("booking not found"))

	rec := f.do(http.MethodDelete, "/bookings/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
