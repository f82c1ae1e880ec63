package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/availability"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	guestModel "hotel/internal/domains/guest/model"
	guestRepo "hotel/internal/domains/guest/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	"hotel/internal/events"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	sharedModel "hotel/shared/model"
	"hotel/shared/timezone"
	"hotel/shared/transaction"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	CacheGetBooking    = "booking:get"
	CacheGetAllBooking = "booking:gets"
	CacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Availability(ctx context.Context, roomID string, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	guestRepo guestRepo.Guest
	tx        transaction.Transactor
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	tx transaction.Transactor,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		tx:        tx,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create books a room for a guest. The room row stays locked while its overlapping bookings are
// counted, so concurrent bookings of the same room are admitted one at a time.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	operator := shared.Operator(ctx)
	booking := model.Booking{}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		if room.Status == roomModel.StatusUnderMaintenance {
			return failure.ErrRoomUnavailable
		}

		overlapping, err := s.repo.CountTx(ctx, tx, repository.OverlapFilter(room.ID, stay.CheckIn, stay.CheckOut))
		if err != nil {
			return fmt.Errorf("failed to count overlapping bookings: %w", err)
		}

		decision, err := availability.Admit(overlapping, room.MaxGuests)
		if err != nil {
			log.Info().
				Str("room", room.ID).
				Int("overlapping", overlapping).
				Int("maxGuests", room.MaxGuests).
				Msg("room is fully booked")

			return err //nolint:wrapcheck
		}

		now := timezone.Now()
		booking = model.Booking{
			ID:            uuid.NewString(),
			GuestID:       guest.ID,
			RoomID:        room.ID,
			CheckIn:       stay.CheckIn,
			CheckOut:      stay.CheckOut,
			Status:        model.StatusActive,
			PricePerNight: room.Price,
			GuestName:     guest.Name,
			GuestEmail:    guest.Email,
			Metadata:      sharedModel.NewMetadata(now, operator),
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		if decision.FillsRoom && room.Status != roomModel.StatusOccupied {
			if err := s.setRoomStatus(ctx, tx, room.ID, roomModel.StatusOccupied, operator); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomID).Str("guest", req.GuestID).Msg("failed to create booking")

		return res, err //nolint:wrapcheck
	}

	s.publish(ctx, events.TypeBookingCreated, booking)
	s.invalidate(ctx, booking.ID, booking.RoomID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(CacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(CacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(CacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update changes status and dates. Dates are only checked against each other; the room's capacity
// is not re-evaluated. Moving an Active booking to another status releases the room.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.Status != constant.Empty && !model.Status(req.Status).Valid() {
		return failure.BadRequestFromString("status must be one of active, cancelled, completed") // nolint:wrapcheck
	}

	operator := shared.Operator(ctx)
	booking := model.Booking{}
	released := false

	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		filter := shared.FilterByID(id, model.FieldID, model.TableName)

		var err error

		booking, err = s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		stay, err := mergeStay(booking, req)
		if err != nil {
			return err
		}

		updatedFields := map[string]any{
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: operator,
		}

		if req.CheckIn != constant.Empty {
			updatedFields[model.FieldCheckIn] = stay.CheckIn
		}

		if req.CheckOut != constant.Empty {
			updatedFields[model.FieldCheckOut] = stay.CheckOut
		}

		status := model.Status(req.Status)
		if status != constant.Empty {
			updatedFields[model.FieldStatus] = string(status)
		}

		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		if booking.Status == model.StatusActive && status != constant.Empty && status != model.StatusActive {
			released = true

			return s.releaseRoom(ctx, tx, booking.RoomID, stay, operator)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to update booking")

		return err //nolint:wrapcheck
	}

	if released && model.Status(req.Status) == model.StatusCancelled {
		s.publish(ctx, events.TypeBookingCancelled, booking)
	}

	s.invalidate(ctx, id, booking.RoomID)

	return nil
}

// Cancel marks an Active booking as cancelled and releases its room.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	operator := shared.Operator(ctx)
	booking := model.Booking{}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		filter := shared.FilterByID(id, model.FieldID, model.TableName)

		var err error

		booking, err = s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if booking.Status != model.StatusActive {
			return failure.ErrInactiveBooking
		}

		updatedFields := map[string]any{
			model.FieldStatus:        string(model.StatusCancelled),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: operator,
		}

		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		return s.releaseRoom(ctx, tx, booking.RoomID, availability.Stay{CheckIn: booking.CheckIn, CheckOut: booking.CheckOut}, operator)
	})
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to cancel booking")

		return err //nolint:wrapcheck
	}

	s.publish(ctx, events.TypeBookingCancelled, booking)
	s.invalidate(ctx, id, booking.RoomID)

	return nil
}

// Delete removes a booking and releases its room whatever the booking's status was.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	operator := shared.Operator(ctx)
	booking := model.Booking{}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		filter := shared.FilterByID(id, model.FieldID, model.TableName)

		var err error

		booking, err = s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if err := s.repo.DeleteTx(ctx, tx, filter); err != nil {
			return failure.FromPostgres(fmt.Errorf("failed to delete booking: %w", err), "booking has a payment and cannot be deleted") // nolint:wrapcheck
		}

		return s.releaseRoom(ctx, tx, booking.RoomID, availability.Stay{CheckIn: booking.CheckIn, CheckOut: booking.CheckOut}, operator)
	})
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to delete booking")

		return err //nolint:wrapcheck
	}

	if booking.Status == model.StatusActive {
		s.publish(ctx, events.TypeBookingCancelled, booking)
	}

	s.invalidate(ctx, id, booking.RoomID)

	return nil
}

// Availability reports how many more bookings the room can take for the requested stay.
func (s *serviceImpl) Availability(ctx context.Context, roomID string, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	overlapping, err := s.repo.Count(ctx, repository.OverlapFilter(room.ID, stay.CheckIn, stay.CheckOut))
	if err != nil {
		log.Error().Err(err).Msg("failed to count overlapping bookings")

		return res, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	remaining := availability.Remaining(overlapping, room.MaxGuests)

	return dto.AvailabilityResponse{
		RoomID:      room.ID,
		CheckIn:     timezone.FormatDay(stay.CheckIn),
		CheckOut:    timezone.FormatDay(stay.CheckOut),
		Overlapping: overlapping,
		MaxGuests:   room.MaxGuests,
		Remaining:   remaining,
		Available:   remaining > 0 && room.Status != roomModel.StatusUnderMaintenance,
		RoomStatus:  string(room.Status),
	}, nil
}

// releaseRoom frees the room once one of its bookings stops being Active. Under the recheck policy
// the room stays as it is while the remaining overlapping bookings still fill it, and a room under
// maintenance is never touched.
func (s *serviceImpl) releaseRoom(ctx context.Context, tx *sqlx.Tx, roomID string, stay availability.Stay, operator string) error {
	room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty || room.Status == roomModel.StatusFree {
		return nil
	}

	recheck := s.cfg.RecheckOnFree()
	remaining := 0

	if recheck {
		if room.Status == roomModel.StatusUnderMaintenance {
			return nil
		}

		remaining, err = s.repo.CountTx(ctx, tx, repository.OverlapFilter(room.ID, stay.CheckIn, stay.CheckOut))
		if err != nil {
			return fmt.Errorf("failed to count overlapping bookings: %w", err)
		}
	}

	if !availability.Release(recheck, remaining, room.MaxGuests) {
		return nil
	}

	return s.setRoomStatus(ctx, tx, room.ID, roomModel.StatusFree, operator)
}

func (s *serviceImpl) setRoomStatus(ctx context.Context, tx *sqlx.Tx, roomID string, status roomModel.Status, operator string) error {
	updatedFields := map[string]any{
		roomModel.FieldStatus:    string(status),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: operator,
	}

	if err := s.roomRepo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		return fmt.Errorf("failed to set room status to %s: %w", status, err)
	}

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType events.Type, booking model.Booking) {
	event := events.New(eventType, timezone.Now())
	event.BookingID = booking.ID
	event.GuestID = booking.GuestID
	event.GuestName = booking.GuestName
	event.GuestEmail = booking.GuestEmail
	event.RoomID = booking.RoomID
	event.CheckIn = timezone.FormatDay(booking.CheckIn)
	event.CheckOut = timezone.FormatDay(booking.CheckOut)

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Error().Err(err).Str("booking", booking.ID).Str("type", string(eventType)).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, bookingID, roomID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(CacheGetBooking, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(roomService.CacheGetRoom, roomID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, CacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, CacheCountBooking)
		shared.InvalidateCaches(c, s.cache, roomService.CacheGetAllRoom)
	}()
}

func parseStay(checkIn, checkOut string) (availability.Stay, error) {
	in, err := timezone.ParseDay(checkIn)
	if err != nil {
		return availability.Stay{}, failure.BadRequestFromString("check_in must be a date formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	out, err := timezone.ParseDay(checkOut)
	if err != nil {
		return availability.Stay{}, failure.BadRequestFromString("check_out must be a date formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	return availability.NewStay(in, out)
}

// mergeStay applies the requested dates over the stored ones and validates the result.
func mergeStay(booking model.Booking, req dto.UpdateBookingRequest) (availability.Stay, error) {
	checkIn := booking.CheckIn
	checkOut := booking.CheckOut

	var err error

	if req.CheckIn != constant.Empty {
		if checkIn, err = timezone.ParseDay(req.CheckIn); err != nil {
			return availability.Stay{}, failure.BadRequestFromString("check_in must be a date formatted as YYYY-MM-DD") // nolint:wrapcheck
		}
	}

	if req.CheckOut != constant.Empty {
		if checkOut, err = timezone.ParseDay(req.CheckOut); err != nil {
			return availability.Stay{}, failure.BadRequestFromString("check_out must be a date formatted as YYYY-MM-DD") // nolint:wrapcheck
		}
	}

	return availability.NewStay(checkIn, checkOut)
}

