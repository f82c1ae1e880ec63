package hotel_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/hotel/model/dto"
	hotelMocks "hotel/internal/domains/hotel/service/mocks"
	"hotel/internal/handlers/hotel"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*hotelMocks.MockHotel, chi.Router) {
	t.Helper()

	service := hotelMocks.NewMockHotel(gomock.NewController(t))
	router := chi.NewRouter()

	handler := hotel.New(service, otelMocks.NewOtel())
	handler.Router(router)

	return service, router
}

func TestCreateHotel(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setup        func(service *hotelMocks.MockHotel)
		expectedCode int
		contains     string
	}{
		{
			name: "created",
			body: `{"name":"Grand","city":"Lisbon"}`,
			setup: func(service *hotelMocks.MockHotel) {
				service.EXPECT().
					Create(gomock.Any(), dto.CreateHotelRequest{Name: "Grand", City: "Lisbon"}).
					Return(dto.HotelResponse{ID: "h-1", Name: "Grand", City: "Lisbon"}, nil)
			},
			expectedCode: http.StatusCreated,
			contains:     `"id":"h-1"`,
		},
		{
			name: "already initialised",
			body: `{"name":"Grand","city":"Lisbon"}`,
			setup: func(service *hotelMocks.MockHotel) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.HotelResponse{}, failure.Conflict("hotel is already initialised"))
			},
			expectedCode: http.StatusConflict,
			contains:     "hotel is already initialised",
		},
		{
			name:         "missing city",
			body:         `{"name":"Grand"}`,
			setup:        func(*hotelMocks.MockHotel) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := newRouter(t)
			tt.setup(service)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hotel/", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestGetHotel_NotInitialised(t *testing.T) {
	service, router := newRouter(t)

	service.EXPECT().Get(gomock.Any()).Return(dto.HotelResponse{}, failure.NotFound("hotel not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hotel/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
