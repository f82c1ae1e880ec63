package payment

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/payment/model"
	"hotel/internal/domains/payment/model/dto"
	"hotel/internal/domains/payment/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RecordPayment)
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Get("/unpaid", handler.GetUnpaidBookings)
		routerGroup.Get("/{id}", handler.GetPaymentByID)
		routerGroup.Patch("/{id}", handler.UpdatePayment)
		routerGroup.Delete("/{id}", handler.DeletePayment)
	})
}

// RecordPayment settles an active booking.
// @Summary Record a payment
// @Description Charge nights times the booked nightly price plus the guest's services. A booking can be paid once.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.RecordPaymentRequest true "Record Payment Request"
// @Success 201 {object} response.Data[dto.PaymentResponse] "Payment recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [post]
func (handler *Handler) RecordPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	req := dto.RecordPaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	payment, err := handler.service.Record(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to record payment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment recorded by " + shared.Operator(ctx))

	response.WithJSON(writer, http.StatusCreated, payment)
}

// GetPayments retrieves payments based on query parameters.
// @Summary Get all payments
// @Tags Payment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_id query string false "Filter by booking ID"
// @Param method query string false "Filter by method (cash, card)"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "List of payments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [get]
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldPaidOn, model.FieldAmount)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldBookingID, model.FieldMethod} {
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

	payments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payments)
}

// GetUnpaidBookings lists active bookings without a payment and what each would cost.
// @Summary Get unpaid bookings
// @Tags Payment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[[]dto.UnpaidBookingResponse] "Unpaid bookings"
// @Failure 500 {object} response.Error
// @Router /v1/payments/unpaid [get]
func (handler *Handler) GetUnpaidBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnpaidBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	unpaid, err := handler.service.Unpaid(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get unpaid bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, unpaid)
}

// GetPaymentByID retrieves a payment by its ID.
// @Summary Get a payment by ID
// @Tags Payment
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Payment details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id} [get]
func (handler *Handler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	payment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payment)
}

// UpdatePayment corrects a recorded payment.
// @Summary Update a payment by ID
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body dto.UpdatePaymentRequest true "Update Payment Request"
// @Success 200 {object} response.Message "Payment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id} [patch]
func (handler *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment updated by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Payment updated successfully")
}

// DeletePayment removes a payment so the booking can be paid again.
// @Summary Delete a payment by ID
// @Tags Payment
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Message "Payment deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id} [delete]
func (handler *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment deleted by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Payment deleted successfully")
}
