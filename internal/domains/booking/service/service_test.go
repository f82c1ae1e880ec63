package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	guestMocks "hotel/internal/domains/guest/mocks"
	guestModel "hotel/internal/domains/guest/model"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/events"
	eventMocks "hotel/internal/events/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	txMocks "hotel/shared/transaction/mocks"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testGuestID = "0b4f6c1e-8d7a-4a53-9b2e-3f1c2d4e5a60"
	testRoomID  = "6a1e2b3c-4d5e-4f60-8a7b-9c0d1e2f3a4b"
)

// store backs the repository mocks with an in-memory room and its bookings.
type store struct {
	room     roomModel.Room
	bookings []model.Booking
}

func (s *store) overlapping(filter gDto.FilterGroup) int {
	_, args := filter.GetWhereClause()

	checkIn, _ := args["stay_check_in"].(time.Time)
	checkOut, _ := args["stay_check_out"].(time.Time)

	count := 0

	for _, booking := range s.bookings {
		if booking.Status == model.StatusActive && booking.CheckOut.After(checkIn) && booking.CheckIn.Before(checkOut) {
			count++
		}
	}

	return count
}

func (s *store) find(filter gDto.FilterGroup) int {
	_, args := filter.GetWhereClause()

	for i, booking := range s.bookings {
		if booking.ID == args[model.FieldID] {
			return i
		}
	}

	return -1
}

type harness struct {
	svc       service.Booking
	store     *store
	published []events.Type
}

func newHarness(t *testing.T, cfg *config.Config, maxGuests int) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	h := &harness{
		store: &store{
			room: roomModel.Room{
				ID:        testRoomID,
				Number:    "101",
				Status:    roomModel.StatusFree,
				Price:     150,
				MaxGuests: maxGuests,
			},
		},
	}

	mockGuestRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(guestModel.Guest{ID: testGuestID, Name: "Ann Lee", Email: "ann@example.com"}, nil).
		AnyTimes()

	mockRoomRepo.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *sqlx.Tx, gDto.FilterGroup) (roomModel.Room, error) {
			return h.store.room, nil
		}).
		AnyTimes()

	mockRoomRepo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
			h.store.room.Status = roomModel.Status(req[roomModel.FieldStatus].(string))

			return nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		CountTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (int, error) {
			return h.store.overlapping(filter), nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
			h.store.bookings = append(h.store.bookings, booking)

			return nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (model.Booking, error) {
			if i := h.store.find(filter); i >= 0 {
				return h.store.bookings[i], nil
			}

			return model.Booking{}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error {
			i := h.store.find(filter)
			if status, ok := req[model.FieldStatus].(string); ok {
				h.store.bookings[i].Status = model.Status(status)
			}

			if checkIn, ok := req[model.FieldCheckIn].(time.Time); ok {
				h.store.bookings[i].CheckIn = checkIn
			}

			if checkOut, ok := req[model.FieldCheckOut].(time.Time); ok {
				h.store.bookings[i].CheckOut = checkOut
			}

			return nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) error {
			i := h.store.find(filter)
			h.store.bookings = append(h.store.bookings[:i], h.store.bookings[i+1:]...)

			return nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			return h.store.overlapping(filter), nil
		}).
		AnyTimes()

	mockRoomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, gDto.FilterGroup, ...string) (roomModel.Room, error) {
			return h.store.room, nil
		}).
		AnyTimes()

	mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, published ...events.Event) error {
			for _, event := range published {
				h.published = append(h.published, event.Type)
			}

			return nil
		}).
		AnyTimes()

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	h.svc = service.New(
		mockRepo,
		mockRoomRepo,
		mockGuestRepo,
		txMocks.NewTransactor(),
		mockPublisher,
		cfg,
		mockCache,
		otelMocks.NewOtel(),
	)

	return h
}

func (h *harness) book(checkIn, checkOut string) (dto.BookingResponse, error) {
	return h.svc.Create(context.Background(), dto.CreateBookingRequest{
		GuestID:  testGuestID,
		RoomID:   testRoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
}

func TestBookingService_CapacityScenario(t *testing.T) {
	h := newHarness(t, &config.Config{}, 2)

	first, err := h.book("2025-03-01", "2025-03-04")
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusActive), first.Status)
	assert.InDelta(t, 150.0, first.PricePerNight, 0.001)
	assert.Equal(t, roomModel.StatusFree, h.store.room.Status)

	_, err = h.book("2025-03-02", "2025-03-05")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusOccupied, h.store.room.Status)

	_, err = h.book("2025-03-03", "2025-03-04")
	require.ErrorIs(t, err, failure.ErrRoomUnavailable)
	assert.Len(t, h.store.bookings, 2)

	// Back-to-back stays share no night.
	_, err = h.book("2025-03-05", "2025-03-07")
	require.NoError(t, err)

	require.NoError(t, h.svc.Cancel(context.Background(), first.ID))
	assert.Equal(t, roomModel.StatusFree, h.store.room.Status)

	_, err = h.book("2025-03-03", "2025-03-04")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusOccupied, h.store.room.Status)

	assert.Equal(t, []events.Type{
		events.TypeBookingCreated,
		events.TypeBookingCreated,
		events.TypeBookingCreated,
		events.TypeBookingCancelled,
		events.TypeBookingCreated,
	}, h.published)
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		roomStatus roomModel.Status
		wantErr    error
		wantCode   int
	}{
		{
			name:     "check out equal to check in",
			checkIn:  "2025-03-01",
			checkOut: "2025-03-01",
			wantErr:  failure.ErrInvalidDateRange,
		},
		{
			name:     "check out before check in",
			checkIn:  "2025-03-05",
			checkOut: "2025-03-01",
			wantErr:  failure.ErrInvalidDateRange,
		},
		{
			name:     "malformed date",
			checkIn:  "01/03/2025",
			checkOut: "2025-03-04",
			wantCode: 400,
		},
		{
			name:       "room under maintenance",
			checkIn:    "2025-03-01",
			checkOut:   "2025-03-04",
			roomStatus: roomModel.StatusUnderMaintenance,
			wantErr:    failure.ErrRoomUnavailable,
		},
		{
			name:     "single guest room is filled",
			checkIn:  "2025-03-01",
			checkOut: "2025-03-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, &config.Config{}, 1)
			if tt.roomStatus != constant.Empty {
				h.store.room.Status = tt.roomStatus
			}

			res, err := h.book(tt.checkIn, tt.checkOut)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, h.store.bookings)
			case tt.wantCode != 0:
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.checkIn, res.CheckIn)
				assert.Equal(t, roomModel.StatusOccupied, h.store.room.Status)
			}
		})
	}
}

func TestBookingService_CancelInactive(t *testing.T) {
	h := newHarness(t, &config.Config{}, 2)

	booking, err := h.book("2025-03-01", "2025-03-04")
	require.NoError(t, err)

	require.NoError(t, h.svc.Cancel(context.Background(), booking.ID))

	err = h.svc.Cancel(context.Background(), booking.ID)
	require.ErrorIs(t, err, failure.ErrInactiveBooking)

	err = h.svc.Cancel(context.Background(), "missing")
	assert.True(t, failure.IsNotFound(err))
}

func TestBookingService_ReleasePolicy(t *testing.T) {
	tests := []struct {
		name       string
		policy     string
		roomStatus roomModel.Status
		want       roomModel.Status
	}{
		{
			name:       "unconditional frees a room under maintenance",
			policy:     config.FreeRoomPolicyUnconditional,
			roomStatus: roomModel.StatusUnderMaintenance,
			want:       roomModel.StatusFree,
		},
		{
			name:       "recheck leaves a room under maintenance alone",
			policy:     config.FreeRoomPolicyRecheck,
			roomStatus: roomModel.StatusUnderMaintenance,
			want:       roomModel.StatusUnderMaintenance,
		},
		{
			name:       "recheck frees an occupied room with places left",
			policy:     config.FreeRoomPolicyRecheck,
			roomStatus: roomModel.StatusOccupied,
			want:       roomModel.StatusFree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.Booking.FreeRoomPolicy = tt.policy

			h := newHarness(t, cfg, 1)

			booking, err := h.book("2025-03-01", "2025-03-04")
			require.NoError(t, err)

			h.store.room.Status = tt.roomStatus

			require.NoError(t, h.svc.Delete(context.Background(), booking.ID))
			assert.Equal(t, tt.want, h.store.room.Status)
			assert.Empty(t, h.store.bookings)
		})
	}
}

func TestBookingService_RecheckKeepsFullRoomOccupied(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Booking.FreeRoomPolicy = config.FreeRoomPolicyRecheck

	h := newHarness(t, cfg, 2)

	long, err := h.book("2025-03-01", "2025-03-05")
	require.NoError(t, err)

	_, err = h.book("2025-03-01", "2025-03-02")
	require.NoError(t, err)

	_, err = h.book("2025-03-04", "2025-03-05")
	require.NoError(t, err)
	require.Equal(t, roomModel.StatusOccupied, h.store.room.Status)

	require.NoError(t, h.svc.Cancel(context.Background(), long.ID))
	assert.Equal(t, roomModel.StatusOccupied, h.store.room.Status)
}

func TestBookingService_Update(t *testing.T) {
	h := newHarness(t, &config.Config{}, 1)

	booking, err := h.book("2025-03-01", "2025-03-04")
	require.NoError(t, err)
	require.Equal(t, roomModel.StatusOccupied, h.store.room.Status)

	err = h.svc.Update(context.Background(), dto.UpdateBookingRequest{}, booking.ID)
	assert.Equal(t, 400, failure.GetCode(err))

	err = h.svc.Update(context.Background(), dto.UpdateBookingRequest{Status: "pending"}, booking.ID)
	assert.Equal(t, 400, failure.GetCode(err))
	assert.Equal(t, model.StatusActive, h.store.bookings[0].Status)

	err = h.svc.Update(context.Background(), dto.UpdateBookingRequest{CheckOut: "2025-02-28"}, booking.ID)
	require.ErrorIs(t, err, failure.ErrInvalidDateRange)

	require.NoError(t, h.svc.Update(context.Background(), dto.UpdateBookingRequest{CheckOut: "2025-03-06"}, booking.ID))
	assert.Equal(t, "2025-03-06", timezone.FormatDay(h.store.bookings[0].CheckOut))
	assert.Equal(t, roomModel.StatusOccupied, h.store.room.Status)

	require.NoError(t, h.svc.Update(context.Background(), dto.UpdateBookingRequest{Status: string(model.StatusCompleted)}, booking.ID))
	assert.Equal(t, model.StatusCompleted, h.store.bookings[0].Status)
	assert.Equal(t, roomModel.StatusFree, h.store.room.Status)
}

func TestBookingService_Availability(t *testing.T) {
	h := newHarness(t, &config.Config{}, 2)

	_, err := h.book("2025-03-01", "2025-03-04")
	require.NoError(t, err)

	res, err := h.svc.Availability(context.Background(), testRoomID, dto.AvailabilityRequest{CheckIn: "2025-03-02", CheckOut: "2025-03-03"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Overlapping)
	assert.Equal(t, 1, res.Remaining)
	assert.True(t, res.Available)

	res, err = h.svc.Availability(context.Background(), testRoomID, dto.AvailabilityRequest{CheckIn: "2025-03-04", CheckOut: "2025-03-05"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Overlapping)
	assert.Equal(t, 2, res.Remaining)

	_, err = h.svc.Availability(context.Background(), testRoomID, dto.AvailabilityRequest{CheckIn: "2025-03-05", CheckOut: "2025-03-05"})
	require.ErrorIs(t, err, failure.ErrInvalidDateRange)
}

func TestBookingService_GetFromRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(
		mockRepo,
		roomMocks.NewMockRoom(ctrl),
		guestMocks.NewMockGuest(ctrl),
		txMocks.NewTransactor(),
		eventMocks.NewMockPublisher(ctrl),
		&config.Config{},
		mockCache,
		otelMocks.NewOtel(),
	)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("database error"))
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	_, err := svc.Get(context.Background(), "id")
	require.Error(t, err)

	_, err = svc.Get(context.Background(), "id")
	assert.True(t, failure.IsNotFound(err))
}
