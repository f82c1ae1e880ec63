package position

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/position/model"
	"hotel/internal/domains/position/model/dto"
	"hotel/internal/domains/position/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Position
	otel    otel.Otel
}

func New(service service.Position, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/positions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePosition)
		routerGroup.Get("/", handler.GetPositions)
		routerGroup.Get("/{id}", handler.GetPositionByID)
		routerGroup.Patch("/{id}", handler.UpdatePosition)
		routerGroup.Delete("/{id}", handler.DeletePosition)
	})
}

// CreatePosition handles the creation of a new position.
// @Summary Create a new position
// @Tags Position
// @Accept json
// @Produce json
// @Param request body dto.CreatePositionRequest true "Create Position Request"
// @Success 201 {object} response.Data[dto.PositionResponse] "Position created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/positions [post]
func (handler *Handler) CreatePosition(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePosition")
	defer scope.End()

	req := dto.CreatePositionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create position")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Position created successfully by " + shared.Operator(ctx))

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetPositions retrieves positions based on query parameters.
// @Summary Get all positions
// @Tags Position
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param keyword query string false "Search by title or department"
// @Param level query string false "Filter by level"
// @Success 200 {object} response.Data[dto.GetPositionsResponse] "List of positions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/positions [get]
func (handler *Handler) GetPositions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPositions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldTitle, model.FieldLevel, model.FieldDepartment)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if keyword := r.URL.Query().Get(constant.RequestParamKeyword); keyword != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterByKeyword(keyword, model.TableName, model.FieldTitle, model.FieldDepartment))
	}

	for _, field := range []string{model.FieldLevel} {
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
		log.Error().Err(err).Msg("failed to get positions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Positions retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetPositionByID retrieves a position by its ID.
// @Summary Get a position by ID
// @Tags Position
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} response.Data[dto.PositionResponse] "Position details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/positions/{id} [get]
func (handler *Handler) GetPositionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPositionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get position by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdatePosition updates an existing position by its ID.
// @Summary Update a position by ID
// @Tags Position
// @Accept json
// @Produce json
// @Param id path string true "Position ID"
// @Param request body dto.UpdatePositionRequest true "Update Position Request"
// @Success 200 {object} response.Message "Position updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/positions/{id} [patch]
func (handler *Handler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePosition")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePositionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update position")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Position updated successfully by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Position updated successfully")
}

// DeletePosition deletes a position by its ID.
// @Summary Delete a position by ID
// @Tags Position
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} response.Message "Position deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/positions/{id} [delete]
func (handler *Handler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePosition")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete position")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Position deleted successfully by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Position deleted successfully")
}
