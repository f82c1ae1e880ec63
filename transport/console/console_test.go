package console_test

import (
	"bytes"
	"context"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/model/dto"
	bookingMocks "hotel/internal/domains/booking/service/mocks"
	paymentDto "hotel/internal/domains/payment/model/dto"
	paymentMocks "hotel/internal/domains/payment/service/mocks"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/transport/console"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	guestID   = "3f1c2d4e-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
	roomID    = "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"
	bookingID = "5b0e7f3a-2c1d-4e6f-8a9b-0c1d2e3f4a5b"
)

type fixture struct {
	bookingService *bookingMocks.MockBooking
	paymentService *paymentMocks.MockPayment
	console        *console.Console
	out            *bytes.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		bookingService: bookingMocks.NewMockBooking(ctrl),
		paymentService: paymentMocks.NewMockPayment(ctrl),
		out:            &bytes.Buffer{},
	}

	f.console = console.New(console.Services{
		Booking: f.bookingService,
		Payment: f.paymentService,
	}, otelMocks.NewOtel())
	f.console.SetOutput(f.out)

	return f
}

func (f fixture) run(args ...string) error {
	return f.console.Execute(context.Background(), args)
}

func TestBookingCreate(t *testing.T) {
	f := newFixture(t)

	f.bookingService.EXPECT().
		Create(gomock.Any(), dto.CreateBookingRequest{GuestID: guestID, RoomID: roomID, CheckIn: "2024-03-01", CheckOut: "2024-03-04"}).
		DoAndReturn(func(ctx context.Context, _ dto.CreateBookingRequest) (dto.BookingResponse, error) {
			assert.Equal(t, constant.OperatorConsole, shared.Operator(ctx))

			return dto.BookingResponse{ID: bookingID, Status: "active"}, nil
		})

	err := f.run("booking", "create", "--guest", guestID, "--room", roomID, "--check-in", "2024-03-01", "--check-out", "2024-03-04")

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), `"id": "`+bookingID+`"`)
	assert.Contains(t, f.out.String(), `"status": "active"`)
}

func TestBookingCreate_OperatorFlag(t *testing.T) {
	f := newFixture(t)

	f.bookingService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ dto.CreateBookingRequest) (dto.BookingResponse, error) {
			assert.Equal(t, "front-desk", shared.Operator(ctx))

			return dto.BookingResponse{ID: bookingID}, nil
		})

	err := f.run("--operator", "front-desk", "booking", "create", "--guest", guestID, "--room", roomID, "--check-in", "2024-03-01", "--check-out", "2024-03-04")

	require.NoError(t, err)
}

func TestBookingCreate_Rejected(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		setup        func(f fixture)
		expectedCode int
	}{
		{
			name:         "invalid date",
			args:         []string{"booking", "create", "--guest", guestID, "--room", roomID, "--check-in", "01/03/2024", "--check-out", "2024-03-04"},
			setup:        func(fixture) {},
			expectedCode: 400,
		},
		{
			name:         "missing flag",
			args:         []string{"booking", "create", "--guest", guestID, "--room", roomID},
			setup:        func(fixture) {},
			expectedCode: 500,
		},
		{
			name: "room full",
			args: []string{"booking", "create", "--guest", guestID, "--room", roomID, "--check-in", "2024-03-01", "--check-out", "2024-03-04"},
			setup: func(f fixture) {
				f.bookingService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.ErrRoomUnavailable)
			},
			expectedCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.run(tt.args...)

			require.Error(t, err)
			assert.Equal(t, tt.expectedCode, failure.GetCode(err))
			assert.Contains(t, f.out.String(), "error (")
		})
	}
}

func TestBookingCancel(t *testing.T) {
	f := newFixture(t)

	f.bookingService.EXPECT().Cancel(gomock.Any(), bookingID).Return(nil)

	require.NoError(t, f.run("booking", "cancel", bookingID))
	assert.Contains(t, f.out.String(), "booking "+bookingID+" cancelled")
}

func TestBookingCancel_Inactive(t *testing.T) {
	f := newFixture(t)

	f.bookingService.EXPECT().Cancel(gomock.Any(), bookingID).Return(failure.ErrInactiveBooking)

	err := f.run("booking", "cancel", bookingID)

	require.ErrorIs(t, err, failure.ErrInactiveBooking)
	assert.Contains(t, f.out.String(), "error (422): booking is not active")
}

func TestBookingList_Filters(t *testing.T) {
	f := newFixture(t)

	f.bookingService.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
			where, args := filter.GetWhereClause()

			assert.Equal(t, "(bookings.room_id = :room_id AND bookings.status = :status)", where)
			assert.Equal(t, roomID, args["room_id"])
			assert.Equal(t, "active", args["status"])
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, "bookings.check_in", params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			return dto.GetBookingsResponse{TotalData: 1, TotalPage: 1}, nil
		})

	err := f.run("booking", "list", "--room", roomID, "--status", "active", "--page", "2", "--sort-by", "check_in")

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), `"total_data": 1`)
}

func TestBookingAvailability(t *testing.T) {
	f := newFixture(t)

	f.bookingService.EXPECT().
		Availability(gomock.Any(), roomID, dto.AvailabilityRequest{CheckIn: "2024-03-01", CheckOut: "2024-03-04"}).
		Return(dto.AvailabilityResponse{RoomID: roomID, MaxGuests: 2, Overlapping: 1, Remaining: 1, Available: true}, nil)

	err := f.run("booking", "availability", roomID, "--check-in", "2024-03-01", "--check-out", "2024-03-04")

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), `"available": true`)
	assert.Contains(t, f.out.String(), `"remaining": 1`)
}

func TestPaymentQuote(t *testing.T) {
	f := newFixture(t)

	f.paymentService.EXPECT().Quote(gomock.Any(), bookingID).Return(paymentDto.ChargeResponse{
		BookingID:     bookingID,
		Nights:        3,
		PricePerNight: 150,
		RoomCost:      450,
		ServiceCost:   55,
		Total:         505,
	}, nil)

	require.NoError(t, f.run("payment", "quote", bookingID))
	assert.Contains(t, f.out.String(), `"total": 505`)
}

func TestPaymentRecord(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		method string
	}{
		{name: "default method", args: []string{"payment", "record", bookingID}, method: "cash"},
		{name: "card", args: []string{"payment", "record", bookingID, "--method", "card"}, method: "card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.paymentService.EXPECT().
				Record(gomock.Any(), paymentDto.RecordPaymentRequest{BookingID: bookingID, Method: tt.method}).
				Return(paymentDto.PaymentResponse{ID: "p-1", BookingID: bookingID, Amount: 505, Method: tt.method}, nil)

			require.NoError(t, f.run(tt.args...))
			assert.Contains(t, f.out.String(), `"method": "`+tt.method+`"`)
		})
	}
}

func TestPaymentRecord_InvalidMethod(t *testing.T) {
	f := newFixture(t)

	err := f.run("payment", "record", bookingID, "--method", "cheque")

	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestPaymentList_Unpaid(t *testing.T) {
	f := newFixture(t)

	f.paymentService.EXPECT().
		Unpaid(gomock.Any(), gomock.Any()).
		Return([]paymentDto.UnpaidBookingResponse{{BookingID: bookingID, GuestName: "Ada"}}, nil)

	require.NoError(t, f.run("payment", "list", "--unpaid"))
	assert.Contains(t, f.out.String(), `"guest_name": "Ada"`)
}
