package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	guestServiceModel "hotel/internal/domains/guestservice/model"
	guestServiceRepo "hotel/internal/domains/guestservice/repository"
	"hotel/internal/domains/payment/billing"
	"hotel/internal/domains/payment/model"
	"hotel/internal/domains/payment/model/dto"
	"hotel/internal/domains/payment/repository"
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
	cacheGetPayment    = "payment:get"
	cacheGetAllPayment = "payment:gets"
	cacheCountPayment  = "payment:count"
)

var errInvalidMethod = failure.BadRequestFromString("method must be one of cash, card")

const unpaidQuery = "NOT EXISTS (SELECT 1 FROM " + model.TableName + " WHERE " +
	model.TableName + "." + model.FieldBookingID + " = " + bookingModel.TableName + "." + bookingModel.FieldID + ")"

type Payment interface {
	Quote(ctx context.Context, bookingID string) (dto.ChargeResponse, error)
	Record(ctx context.Context, req dto.RecordPaymentRequest) (dto.PaymentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
	Update(ctx context.Context, req dto.UpdatePaymentRequest, id string) error
	Delete(ctx context.Context, id string) error
	Unpaid(ctx context.Context, req gDto.QueryParams) ([]dto.UnpaidBookingResponse, error)
}

type serviceImpl struct {
	repo             repository.Payment
	bookingRepo      bookingRepo.Booking
	guestServiceRepo guestServiceRepo.GuestService
	tx               transaction.Transactor
	publisher        events.Publisher
	cfg              *config.Config
	cache            cache.RedisCache
	otel             otel.Otel
}

func New(
	repo repository.Payment,
	bookingRepo bookingRepo.Booking,
	guestServiceRepo guestServiceRepo.GuestService,
	tx transaction.Transactor,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:             repo,
		bookingRepo:      bookingRepo,
		guestServiceRepo: guestServiceRepo,
		tx:               tx,
		publisher:        publisher,
		cfg:              cfg,
		cache:            cache,
		otel:             otel,
	}
}

// Quote prices an unpaid Active booking without recording anything.
func (s *serviceImpl) Quote(ctx context.Context, bookingID string) (res dto.ChargeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuotePayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		booking, err := s.bookingRepo.GetTx(ctx, tx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if err := s.ensurePayable(ctx, tx, booking); err != nil {
			return err
		}

		charge, err := s.computeCharge(ctx, tx, booking)
		if err != nil {
			return err
		}

		res.FromCharge(booking.ID, charge)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("booking", bookingID).Msg("failed to quote booking")

		return res, err //nolint:wrapcheck
	}

	return res, nil
}

// Record settles an Active booking with the amount the billing rules give today.
// The booking row is locked so two desks cannot pay the same booking twice.
func (s *serviceImpl) Record(ctx context.Context, req dto.RecordPaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !model.Method(req.Method).Valid() {
		return res, errInvalidMethod
	}

	operator := shared.Operator(ctx)
	payment := model.Payment{}
	booking := bookingModel.Booking{}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		booking, err = s.bookingRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if err := s.ensurePayable(ctx, tx, booking); err != nil {
			return err
		}

		charge, err := s.computeCharge(ctx, tx, booking)
		if err != nil {
			return err
		}

		now := timezone.Now()
		payment = model.Payment{
			ID:        uuid.NewString(),
			BookingID: booking.ID,
			Amount:    charge.Total,
			PaidOn:    timezone.Day(now),
			Method:    model.Method(req.Method),
			Metadata:  sharedModel.NewMetadata(now, operator),
		}

		if err := s.repo.InsertTx(ctx, tx, payment); err != nil {
			if failure.IsUniqueViolation(err) {
				return failure.ErrDuplicatePayment
			}

			return fmt.Errorf("failed to insert payment: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("booking", req.BookingID).Msg("failed to record payment")

		return res, err //nolint:wrapcheck
	}

	event := events.New(events.TypePaymentRecorded, timezone.Now())
	event.BookingID = booking.ID
	event.GuestID = booking.GuestID
	event.GuestName = booking.GuestName
	event.GuestEmail = booking.GuestEmail
	event.RoomID = booking.RoomID
	event.CheckIn = timezone.FormatDay(booking.CheckIn)
	event.CheckOut = timezone.FormatDay(booking.CheckOut)
	event.Amount = payment.Amount
	event.Method = string(payment.Method)

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Error().Err(err).Str("booking", booking.ID).Msg("failed to publish payment event")
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllPayments")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountPayments")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPayment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment")

		return res, nil
	}

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	res.FromModel(payment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment to cache")
		}
	}()

	return res, nil
}

// Update corrects the amount, date or method of a recorded payment.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdatePaymentRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.Method != constant.Empty && !model.Method(req.Method).Valid() {
		return errInvalidMethod
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if payment exists")

		return fmt.Errorf("failed to check if payment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("payment not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, shared.Operator(ctx))

	if req.PaidOn != constant.Empty {
		paidOn, err := timezone.ParseDay(req.PaidOn)
		if err != nil {
			return failure.BadRequestFromString("paid_on must be a date formatted as YYYY-MM-DD") // nolint:wrapcheck
		}

		updatedFields[model.FieldPaidOn] = paidOn
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment")

		return fmt.Errorf("failed to update payment: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if payment exists")

		return fmt.Errorf("failed to check if payment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("payment not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete payment")

		return fmt.Errorf("failed to delete payment: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Unpaid lists Active bookings that have no payment yet together with what each would cost today.
func (s *serviceImpl) Unpaid(ctx context.Context, req gDto.QueryParams) (res []dto.UnpaidBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnpaidBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.RestrictSort(bookingModel.TableName, bookingModel.FieldCheckIn, bookingModel.FieldCheckOut)

	filter := gDto.FilterGroup{}.And(
		gDto.Filter{
			Field:    bookingModel.FieldStatus,
			Value:    string(bookingModel.StatusActive),
			Operator: gDto.FilterOperatorEq,
			Table:    bookingModel.TableName,
		},
		gDto.Filter{
			Value:    unpaidQuery,
			Operator: gDto.FilterPlainQuery,
		},
	)

	bookings, err := s.bookingRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get unpaid bookings")

		return res, fmt.Errorf("failed to get unpaid bookings: %w", err)
	}

	res = make([]dto.UnpaidBookingResponse, 0, len(bookings))

	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, booking := range bookings {
			charge, err := s.computeCharge(ctx, tx, booking)
			if err != nil {
				return err
			}

			res = append(res, dto.UnpaidBookingResponse{
				BookingID: booking.ID,
				GuestID:   booking.GuestID,
				GuestName: booking.GuestName,
				RoomID:    booking.RoomID,
				CheckIn:   timezone.FormatDay(booking.CheckIn),
				CheckOut:  timezone.FormatDay(booking.CheckOut),
				Total:     charge.Total,
			})
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to price unpaid bookings")

		return nil, err //nolint:wrapcheck
	}

	return res, nil
}

// ensurePayable rejects bookings that are no longer Active or already carry a payment.
func (s *serviceImpl) ensurePayable(ctx context.Context, tx *sqlx.Tx, booking bookingModel.Booking) error {
	if booking.Status != bookingModel.StatusActive {
		return failure.ErrInactiveBooking
	}

	paid, err := s.repo.CountTx(ctx, tx, byBooking(booking.ID))
	if err != nil {
		return fmt.Errorf("failed to count payments: %w", err)
	}

	if paid > 0 {
		return failure.ErrDuplicatePayment
	}

	return nil
}

// computeCharge prices a booking from its snapshot nightly rate and the guest's services.
// Services are all of the guest's history unless billing is scoped to the stay.
func (s *serviceImpl) computeCharge(ctx context.Context, tx *sqlx.Tx, booking bookingModel.Booking) (billing.Charge, error) {
	filter := gDto.FilterGroup{}.And(gDto.Filter{
		Field:    guestServiceModel.FieldGuestID,
		Value:    booking.GuestID,
		Operator: gDto.FilterOperatorEq,
		Table:    guestServiceModel.TableName,
	})

	if s.cfg.BillStayOnly() {
		filter = filter.And(
			gDto.Filter{
				ArgName:  "stay_check_in",
				Field:    guestServiceModel.FieldUsedOn,
				Value:    booking.CheckIn,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    guestServiceModel.TableName,
			},
			gDto.Filter{
				ArgName:  "stay_check_out",
				Field:    guestServiceModel.FieldUsedOn,
				Value:    booking.CheckOut,
				Operator: gDto.FilterOperatorLess,
				Table:    guestServiceModel.TableName,
			},
		)
	}

	used, err := s.guestServiceRepo.GetAllTx(ctx, tx, filter)
	if err != nil {
		return billing.Charge{}, fmt.Errorf("failed to get guest services: %w", err)
	}

	prices := make([]float64, len(used))
	for i, service := range used {
		prices[i] = service.ServicePrice
	}

	return billing.Compute(booking.CheckIn, booking.CheckOut, booking.PricePerNight, prices...), nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPayment, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete payment from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
		shared.InvalidateCaches(c, s.cache, cacheCountPayment)
	}()
}

func byBooking(bookingID string) gDto.FilterGroup {
	return shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)
}

