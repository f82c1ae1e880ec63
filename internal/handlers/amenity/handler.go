package amenity

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/amenity/model"
	"hotel/internal/domains/amenity/model/dto"
	"hotel/internal/domains/amenity/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Amenity
	otel    otel.Otel
}

func New(service service.Amenity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateService)
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/{id}", handler.GetServiceByID)
		routerGroup.Patch("/{id}", handler.UpdateService)
		routerGroup.Delete("/{id}", handler.DeleteService)
	})
}

// CreateService handles the creation of a new service.
// @Summary Create a new service
// @Tags Service
// @Accept json
// @Produce json
// @Param request body dto.CreateAmenityRequest true "Create Service Request"
// @Success 201 {object} response.Data[dto.AmenityResponse] "Service created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services [post]
func (handler *Handler) CreateService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateAmenityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Service created successfully by " + shared.Operator(ctx))

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetServices retrieves services based on query parameters.
// @Summary Get all services
// @Tags Service
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param keyword query string false "Search by service name"
// @Success 200 {object} response.Data[dto.GetAmenitiesResponse] "List of services"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldName, model.FieldPrice)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if keyword := r.URL.Query().Get(constant.RequestParamKeyword); keyword != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterByKeyword(keyword, model.TableName, model.FieldName))
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Services retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetServiceByID retrieves a service by its ID.
// @Summary Get a service by ID
// @Tags Service
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[dto.AmenityResponse] "Service details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [get]
func (handler *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateService updates an existing service by its ID.
// @Summary Update a service by ID
// @Tags Service
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateAmenityRequest true "Update Service Request"
// @Success 200 {object} response.Message "Service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [patch]
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAmenityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service updated successfully by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Service updated successfully")
}

// DeleteService deletes a service by its ID.
// @Summary Delete a service by ID
// @Tags Service
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message "Service deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [delete]
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service deleted successfully by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}
