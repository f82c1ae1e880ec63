package room_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	bookingDto "hotel/internal/domains/booking/model/dto"
	bookingMocks "hotel/internal/domains/booking/service/mocks"
	"hotel/internal/domains/room/model/dto"
	roomMocks "hotel/internal/domains/room/service/mocks"
	"hotel/internal/handlers/room"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*roomMocks.MockRoom, *bookingMocks.MockBooking, chi.Router) {
	t.Helper()

	ctrl := gomock.NewController(t)
	roomService := roomMocks.NewMockRoom(ctrl)
	bookingService := bookingMocks.NewMockBooking(ctrl)

	router := chi.NewRouter()
	handler := room.New(roomService, bookingService, otelMocks.NewOtel())
	handler.Router(router)

	return roomService, bookingService, router
}

func serve(router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestGetRoomAvailability(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		setup        func(bookingService *bookingMocks.MockBooking)
		expectedCode int
		contains     string
	}{
		{
			name:  "room with space left",
			query: "?check_in=2024-03-01&check_out=2024-03-03",
			setup: func(bookingService *bookingMocks.MockBooking) {
				bookingService.EXPECT().Availability(gomock.Any(), "r-1", bookingDto.AvailabilityRequest{
					CheckIn:  "2024-03-01",
					CheckOut: "2024-03-03",
				}).Return(bookingDto.AvailabilityResponse{RoomID: "r-1", Overlapping: 1, MaxGuests: 2, Remaining: 1, Available: true}, nil)
			},
			expectedCode: http.StatusOK,
			contains:     `"remaining":1`,
		},
		{
			name:         "missing check out",
			query:        "?check_in=2024-03-01",
			setup:        func(*bookingMocks.MockBooking) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "reversed range",
			query: "?check_in=2024-03-05&check_out=2024-03-01",
			setup: func(bookingService *bookingMocks.MockBooking) {
				bookingService.EXPECT().Availability(gomock.Any(), "r-1", gomock.Any()).
					Return(bookingDto.AvailabilityResponse{}, failure.ErrInvalidDateRange)
			},
			expectedCode: http.StatusBadRequest,
			contains:     failure.ErrInvalidDateRange.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bookingService, router := setup(t)
			tt.setup(bookingService)

			rec := serve(router, http.MethodGet, "/rooms/r-1/availability"+tt.query, "")

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestGetRooms_KeywordAndStatus(t *testing.T) {
	roomService, _, router := setup(t)

	roomService.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error) {
			assert.Equal(t, "rooms.created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			where, args := filter.GetWhereClause()
			assert.Equal(t, "((LOWER(rooms.number) LIKE LOWER(:keyword_number) ) AND rooms.status = :status)", where)
			assert.Equal(t, "%20%", args["keyword_number"])
			assert.Equal(t, "free", args["status"])

			return dto.GetRoomsResponse{Rooms: []dto.RoomResponse{{ID: "r-1", Number: "201"}}, TotalData: 1, TotalPage: 1}, nil
		})

	rec := serve(router, http.MethodGet, "/rooms/?keyword=20&status=free&sort_by=password", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"number":"201"`)
}

func TestCreateRoom(t *testing.T) {
	roomService, _, router := setup(t)

	roomService.EXPECT().Create(gomock.Any(), dto.CreateRoomRequest{
		Number:     "201",
		RoomTypeID: "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d",
	}).Return(dto.RoomResponse{ID: "r-1", Number: "201", Status: "free", PricePerNight: 150}, nil)

	rec := serve(router, http.MethodPost, "/rooms/", `{"number":"201","room_type_id":"9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price_per_night":150`)
}

func TestCreateRoom_InvalidStatus(t *testing.T) {
	_, _, router := setup(t)

	rec := serve(router, http.MethodPost, "/rooms/", `{"number":"201","room_type_id":"9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d","status":"cleaning"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteRoom_WithBookings(t *testing.T) {
	roomService, _, router := setup(t)

	roomService.EXPECT().Delete(gomock.Any(), "r-1").Return(failure.Conflict("room has bookings and cannot be deleted"))

	rec := serve(router, http.MethodDelete, "/rooms/r-1", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}
