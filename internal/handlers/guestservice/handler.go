package guestservice

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/guestservice/model"
	"hotel/internal/domains/guestservice/model/dto"
	"hotel/internal/domains/guestservice/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.GuestService
	otel    otel.Otel
}

func New(service service.GuestService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guest-services", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuestService)
		routerGroup.Get("/", handler.GetGuestServices)
		routerGroup.Get("/{id}", handler.GetGuestServiceByID)
		routerGroup.Patch("/{id}", handler.UpdateGuestService)
		routerGroup.Delete("/{id}", handler.DeleteGuestService)
	})
}

// CreateGuestService handles the creation of a new guest service.
// @Summary Create a new guest service
// @Tags GuestService
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestServiceRequest true "Create GuestService Request"
// @Success 201 {object} response.Data[dto.GuestServiceResponse] "Guest service created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest-services [post]
func (handler *Handler) CreateGuestService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuestService")
	defer scope.End()

	req := dto.CreateGuestServiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest service")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest service created successfully by " + shared.Operator(ctx))

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetGuestServices retrieves guest services based on query parameters.
// @Summary Get all guest services
// @Tags GuestService
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param guest_id query string false "Filter by guest ID"
// @Param service_id query string false "Filter by service ID"
// @Success 200 {object} response.Data[dto.GetGuestServicesResponse] "List of guest services"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest-services [get]
func (handler *Handler) GetGuestServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldUsedOn)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldGuestID, model.FieldServiceID} {
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

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest services retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetGuestServiceByID retrieves a guest service by its ID.
// @Summary Get a guest service by ID
// @Tags GuestService
// @Produce json
// @Param id path string true "Guest service ID"
// @Success 200 {object} response.Data[dto.GuestServiceResponse] "Guest service details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest-services/{id} [get]
func (handler *Handler) GetGuestServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest service by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateGuestService updates an existing guest service by its ID.
// @Summary Update a guest service by ID
// @Tags GuestService
// @Accept json
// @Produce json
// @Param id path string true "Guest service ID"
// @Param request body dto.UpdateGuestServiceRequest true "Update GuestService Request"
// @Success 200 {object} response.Message "Guest service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest-services/{id} [patch]
func (handler *Handler) UpdateGuestService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuestService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGuestServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest service updated successfully by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Guest service updated successfully")
}

// DeleteGuestService deletes a guest service by its ID.
// @Summary Delete a guest service by ID
// @Tags GuestService
// @Produce json
// @Param id path string true "Guest service ID"
// @Success 200 {object} response.Message "Guest service deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest-services/{id} [delete]
func (handler *Handler) DeleteGuestService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuestService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guest service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest service deleted successfully by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Guest service deleted successfully")
}
