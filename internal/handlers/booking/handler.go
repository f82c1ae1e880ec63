package booking

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	guestModel "hotel/internal/domains/guest/model"
	paymentService "hotel/internal/domains/payment/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamFrom = "from"
	queryParamTo   = "to"
)

type Handler struct {
	service        service.Booking
	paymentService paymentService.Payment
	otel           otel.Otel
}

func New(service service.Booking, paymentService paymentService.Payment, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		paymentService: paymentService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Get("/{id}/charge", handler.GetBookingCharge)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Book a room for a guest over [check_in, check_out). Fails with 409 when the room is full for any night of the stay.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully by " + shared.Operator(ctx))

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param keyword query string false "Search by guest name"
// @Param room_id query string false "Filter by room ID"
// @Param guest_id query string false "Filter by guest ID"
// @Param status query string false "Filter by status (active, cancelled, completed)"
// @Param from query string false "Only bookings checking out after this date (YYYY-MM-DD)"
// @Param to query string false "Only bookings checking in before this date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldCheckIn, model.FieldCheckOut, model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if keyword := r.URL.Query().Get(constant.RequestParamKeyword); keyword != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterByKeyword(keyword, guestModel.TableName, guestModel.FieldName))
	}

	for _, field := range []string{model.FieldRoomID, model.FieldGuestID, model.FieldStatus} {
		value := r.URL.Query().Get(field)
		if value == "" {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	// from/to select bookings that overlap the window, the same way capacity is counted.
	if from := r.URL.Query().Get(queryParamFrom); from != "" {
		day, err := timezone.ParseDay(from)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("from must be a date in YYYY-MM-DD format"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  queryParamFrom,
			Field:    model.FieldCheckOut,
			Operator: gDto.FilterOperatorGreater,
			Value:    day,
			Table:    model.TableName,
		})
	}

	if to := r.URL.Query().Get(queryParamTo); to != "" {
		day, err := timezone.ParseDay(to)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("to must be a date in YYYY-MM-DD format"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  queryParamTo,
			Field:    model.FieldCheckIn,
			Operator: gDto.FilterOperatorLess,
			Value:    day,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// GetBookingCharge computes what a booking would cost if paid now.
// @Summary Quote a booking
// @Description Nights times the booked nightly price plus the guest's services. Only unpaid Active bookings can be quoted.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[paymentDto.ChargeResponse] "Charge breakdown"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charge [get]
func (handler *Handler) GetBookingCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingCharge")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	charge, err := handler.paymentService.Quote(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to quote booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, charge)
}

// UpdateBooking updates an existing booking.
// @Summary Update a booking by ID
// @Description Change the dates or status of a booking. Leaving the active status frees the room.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// CancelBooking cancels an active booking and frees its room.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// DeleteBooking deletes a booking and frees its room.
// @Summary Delete a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
