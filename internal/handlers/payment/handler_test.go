package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/payment/model/dto"
	paymentMocks "hotel/internal/domains/payment/service/mocks"
	"hotel/internal/handlers/payment"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const bookingID = "5b0e7f3a-2c1d-4e6f-8a9b-0c1d2e3f4a5b"

func newRouter(t *testing.T) (*paymentMocks.MockPayment, chi.Router) {
	t.Helper()

	service := paymentMocks.NewMockPayment(gomock.NewController(t))
	router := chi.NewRouter()

	handler := payment.New(service, otelMocks.NewOtel())
	handler.Router(router)

	return service, router
}

func TestRecordPayment(t *testing.T) {
	body := `{"booking_id":"` + bookingID + `","method":"card"}`

	tests := []struct {
		name         string
		body         string
		setup        func(service *paymentMocks.MockPayment)
		expectedCode int
		contains     string
	}{
		{
			name: "recorded",
			body: body,
			setup: func(service *paymentMocks.MockPayment) {
				service.EXPECT().
					Record(gomock.Any(), dto.RecordPaymentRequest{BookingID: bookingID, Method: "card"}).
					Return(dto.PaymentResponse{ID: "p-1", BookingID: bookingID, Amount: 505, Method: "card"}, nil)
			},
			expectedCode: http.StatusCreated,
			contains:     `"amount":505`,
		},
		{
			name: "already paid",
			body: body,
			setup: func(service *paymentMocks.MockPayment) {
				service.EXPECT().Record(gomock.Any(), gomock.Any()).Return(dto.PaymentResponse{}, failure.ErrDuplicatePayment)
			},
			expectedCode: http.StatusConflict,
			contains:     failure.ErrDuplicatePayment.Message,
		},
		{
			name: "booking not active",
			body: body,
			setup: func(service *paymentMocks.MockPayment) {
				service.EXPECT().Record(gomock.Any(), gomock.Any()).Return(dto.PaymentResponse{}, failure.ErrInactiveBooking)
			},
			expectedCode: http.StatusUnprocessableEntity,
			contains:     failure.ErrInactiveBooking.Message,
		},
		{
			name:         "unknown method",
			body:         `{"booking_id":"` + bookingID + `","method":"cheque"}`,
			setup:        func(*paymentMocks.MockPayment) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := newRouter(t)
			tt.setup(service)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/payments/", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestGetUnpaidBookings(t *testing.T) {
	service, router := newRouter(t)

	service.EXPECT().
		Unpaid(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams) ([]dto.UnpaidBookingResponse, error) {
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, "check_in", params.SortBy)

			return []dto.UnpaidBookingResponse{{BookingID: bookingID, GuestName: "Ada", Total: 505}}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments/unpaid?page=2&sort_by=check_in", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"guest_name":"Ada"`)
}
