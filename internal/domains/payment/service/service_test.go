package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	otelMocks "hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	guestServiceMocks "hotel/internal/domains/guestservice/mocks"
	guestServiceModel "hotel/internal/domains/guestservice/model"
	paymentMocks "hotel/internal/domains/payment/mocks"
	"hotel/internal/domains/payment/model"
	"hotel/internal/domains/payment/model/dto"
	"hotel/internal/domains/payment/service"
	"hotel/internal/events"
	eventMocks "hotel/internal/events/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	txMocks "hotel/shared/transaction/mocks"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBookingID = "3f1c2d4e-5a60-4b7c-8d9e-0f1a2b3c4d5e"

type mocks struct {
	repo         *paymentMocks.MockPayment
	bookingRepo  *bookingMocks.MockBooking
	guestService *guestServiceMocks.MockGuestService
	publisher    *eventMocks.MockPublisher
	cache        *cacheMocks.MockRedisCache
}

func newService(t *testing.T, cfg *config.Config) (service.Payment, mocks) {
	t.Helper()

	return newTracedService(t, cfg, otelMocks.NewOtel())
}

func newTracedService(t *testing.T, cfg *config.Config, tracer otel.Otel) (service.Payment, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := mocks{
		repo:         paymentMocks.NewMockPayment(ctrl),
		bookingRepo:  bookingMocks.NewMockBooking(ctrl),
		guestService: guestServiceMocks.NewMockGuestService(ctrl),
		publisher:    eventMocks.NewMockPublisher(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, m.bookingRepo, m.guestService, txMocks.NewTransactor(), m.publisher, cfg, m.cache, tracer)

	return svc, m
}

func activeBooking(t *testing.T) bookingModel.Booking {
	t.Helper()

	checkIn, err := timezone.ParseDay("2025-03-01")
	require.NoError(t, err)

	checkOut, err := timezone.ParseDay("2025-03-04")
	require.NoError(t, err)

	return bookingModel.Booking{
		ID:            testBookingID,
		GuestID:       "guest-1",
		RoomID:        "room-1",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        bookingModel.StatusActive,
		PricePerNight: 150,
		GuestEmail:    "ann@example.com",
	}
}

func services(prices ...float64) []guestServiceModel.GuestService {
	used := make([]guestServiceModel.GuestService, len(prices))
	for i, price := range prices {
		used[i] = guestServiceModel.GuestService{ServicePrice: price}
	}

	return used
}

func TestPaymentService_Record(t *testing.T) {
	svc, m := newService(t, &config.Config{})

	m.bookingRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(activeBooking(t), nil)
	m.repo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	m.guestService.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(services(30, 25), nil)

	var inserted model.Payment

	m.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment model.Payment) error {
			inserted = payment

			return nil
		})

	var published events.Event

	m.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event ...events.Event) error {
			published = event[0]

			return nil
		})

	res, err := svc.Record(context.Background(), dto.RecordPaymentRequest{BookingID: testBookingID, Method: string(model.MethodCard)})
	require.NoError(t, err)

	assert.InDelta(t, 505.0, res.Amount, 0.001)
	assert.InDelta(t, 505.0, inserted.Amount, 0.001)
	assert.Equal(t, model.MethodCard, inserted.Method)
	assert.Equal(t, timezone.Today(), inserted.PaidOn)
	assert.Equal(t, events.TypePaymentRecorded, published.Type)
	assert.InDelta(t, 505.0, published.Amount, 0.001)
}

func TestPaymentService_RecordRejected(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(t *testing.T, m mocks)
		wantErr   error
		wantCode  int
	}{
		{
			name: "booking not found",
			setupMock: func(_ *testing.T, m mocks) {
				m.bookingRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "cancelled booking",
			setupMock: func(t *testing.T, m mocks) {
				booking := activeBooking(t)
				booking.Status = bookingModel.StatusCancelled

				m.bookingRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)
			},
			wantErr: failure.ErrInactiveBooking,
		},
		{
			name: "already paid",
			setupMock: func(t *testing.T, m mocks) {
				m.bookingRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(activeBooking(t), nil)
				m.repo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantErr: failure.ErrDuplicatePayment,
		},
		{
			name: "paid concurrently",
			setupMock: func(t *testing.T, m mocks) {
				m.bookingRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(activeBooking(t), nil)
				m.repo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
				m.guestService.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantErr: failure.ErrDuplicatePayment,
		},
		{
			name: "services lookup fails",
			setupMock: func(t *testing.T, m mocks) {
				m.bookingRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(activeBooking(t), nil)
				m.repo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
				m.guestService.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t, &config.Config{})
			tt.setupMock(t, m)

			_, err := svc.Record(context.Background(), dto.RecordPaymentRequest{BookingID: testBookingID, Method: string(model.MethodCash)})
			require.Error(t, err)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestPaymentService_RecordUnknownMethod(t *testing.T) {
	svc, _ := newService(t, &config.Config{})

	_, err := svc.Record(context.Background(), dto.RecordPaymentRequest{BookingID: testBookingID, Method: "cheque"})

	assert.Equal(t, 400, failure.GetCode(err))
}

func TestPaymentService_RecordTracesFailure(t *testing.T) {
	tracer := otelMocks.NewRecorder()
	svc, m := newTracedService(t, &config.Config{}, tracer)

	booking := activeBooking(t)
	booking.Status = bookingModel.StatusCompleted

	m.bookingRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)

	_, err := svc.Record(context.Background(), dto.RecordPaymentRequest{BookingID: testBookingID, Method: string(model.MethodCash)})
	require.ErrorIs(t, err, failure.ErrInactiveBooking)

	scope := tracer.Scope(constant.OtelServiceScopeName + ".RecordPayment")
	require.NotNil(t, scope)
	require.Len(t, scope.Errors, 1)
	assert.ErrorIs(t, scope.Errors[0], failure.ErrInactiveBooking)
	assert.True(t, scope.Ended)
}

func TestPaymentService_Quote(t *testing.T) {
	tests := []struct {
		name        string
		scope       string
		wantClause  string
		wantService float64
	}{
		{
			name:        "all services of the guest",
			scope:       config.ServiceScopeAll,
			wantClause:  "(guest_services.guest_id = :guest_id)",
			wantService: 55,
		},
		{
			name:  "services inside the stay",
			scope: config.ServiceScopeStay,
			wantClause: "(guest_services.guest_id = :guest_id AND guest_services.used_on >= :stay_check_in " +
				"AND guest_services.used_on < :stay_check_out)",
			wantService: 55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.Billing.ServiceScope = tt.scope

			svc, m := newService(t, cfg)

			m.bookingRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(activeBooking(t), nil)
			m.repo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
			m.guestService.EXPECT().
				GetAllTx(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) ([]guestServiceModel.GuestService, error) {
					where, _ := filter.GetWhereClause()
					assert.Equal(t, tt.wantClause, where)

					return services(30, 25), nil
				})

			res, err := svc.Quote(context.Background(), testBookingID)
			require.NoError(t, err)

			assert.Equal(t, 3, res.Nights)
			assert.InDelta(t, 450.0, res.RoomCost, 0.001)
			assert.InDelta(t, tt.wantService, res.ServiceCost, 0.001)
			assert.InDelta(t, 505.0, res.Total, 0.001)
		})
	}
}

func TestPaymentService_QuoteRejected(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(t *testing.T, m mocks)
		wantErr   error
		wantCode  int
	}{
		{
			name: "booking not found",
			setupMock: func(_ *testing.T, m mocks) {
				m.bookingRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "cancelled booking",
			setupMock: func(t *testing.T, m mocks) {
				booking := activeBooking(t)
				booking.Status = bookingModel.StatusCancelled

				m.bookingRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)
			},
			wantErr: failure.ErrInactiveBooking,
		},
		{
			name: "already paid",
			setupMock: func(t *testing.T, m mocks) {
				m.bookingRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(activeBooking(t), nil)
				m.repo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantErr: failure.ErrDuplicatePayment,
		},
		{
			name: "payment lookup fails",
			setupMock: func(t *testing.T, m mocks) {
				m.bookingRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(activeBooking(t), nil)
				m.repo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t, &config.Config{})
			tt.setupMock(t, m)

			res, err := svc.Quote(context.Background(), testBookingID)
			require.Error(t, err)
			assert.Zero(t, res.Total)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestPaymentService_UnpaidSort(t *testing.T) {
	tests := []struct {
		name        string
		params      gDto.QueryParams
		wantSortBy  string
		wantSortDir string
	}{
		{
			name:        "allowed column",
			params:      gDto.QueryParams{SortBy: "check_in", SortDir: gDto.SortDirDesc},
			wantSortBy:  "bookings.check_in",
			wantSortDir: gDto.SortDirDesc,
		},
		{
			name:        "expression falls back to creation time",
			params:      gDto.QueryParams{SortBy: "(SELECT pg_sleep(5))", SortDir: gDto.SortDirAsc},
			wantSortBy:  "bookings.created_at",
			wantSortDir: gDto.SortDirDesc,
		},
		{
			name:        "unsorted",
			params:      gDto.QueryParams{},
			wantSortBy:  "bookings.created_at",
			wantSortDir: gDto.SortDirDesc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t, &config.Config{})

			m.bookingRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
					assert.Equal(t, tt.wantSortBy, params.SortBy)
					assert.Equal(t, tt.wantSortDir, params.SortDir)

					return nil, nil
				})

			res, err := svc.Unpaid(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Empty(t, res)
		})
	}
}

func TestPaymentService_Unpaid(t *testing.T) {
	svc, m := newService(t, &config.Config{})

	m.bookingRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
			where, _ := filter.GetWhereClause()
			assert.Contains(t, where, "bookings.status = :status")
			assert.Contains(t, where, "NOT EXISTS (SELECT 1 FROM payments WHERE payments.booking_id = bookings.id)")

			return []bookingModel.Booking{activeBooking(t)}, nil
		})
	m.guestService.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(services(55), nil)

	res, err := svc.Unpaid(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, testBookingID, res[0].BookingID)
	assert.Equal(t, "2025-03-01", res[0].CheckIn)
	assert.InDelta(t, 505.0, res[0].Total, 0.001)
}

func TestPaymentService_Update(t *testing.T) {
	amount := 480.0

	tests := []struct {
		name      string
		req       dto.UpdatePaymentRequest
		setupMock func(m mocks)
		wantCode  int
	}{
		{
			name:      "empty request",
			req:       dto.UpdatePaymentRequest{},
			setupMock: func(mocks) {},
			wantCode:  400,
		},
		{
			name: "not found",
			req:  dto.UpdatePaymentRequest{Amount: &amount},
			setupMock: func(m mocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: 404,
		},
		{
			name: "amount and date",
			req:  dto.UpdatePaymentRequest{Amount: &amount, PaidOn: "2025-03-04"},
			setupMock: func(m mocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
						assert.InDelta(t, amount, req[model.FieldAmount], 0.001)
						assert.Equal(t, "2025-03-04", timezone.FormatDay(req[model.FieldPaidOn].(time.Time)))

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t, &config.Config{})
			tt.setupMock(m)

			err := svc.Update(context.Background(), tt.req, "payment-1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
