package staff

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/staff/model"
	"hotel/internal/domains/staff/model/dto"
	"hotel/internal/domains/staff/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Staff
	otel    otel.Otel
}

func New(service service.Staff, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staff", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStaff)
		routerGroup.Get("/", handler.GetStaff)
		routerGroup.Get("/{id}", handler.GetStaffByID)
		routerGroup.Patch("/{id}", handler.UpdateStaff)
		routerGroup.Delete("/{id}", handler.DeleteStaff)
	})
}

// CreateStaff handles the creation of a new staff member.
// @Summary Create a new staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Create Staff Request"
// @Success 201 {object} response.Data[dto.StaffResponse] "Staff member created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff [post]
func (handler *Handler) CreateStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaff")
	defer scope.End()

	req := dto.CreateStaffRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create staff member")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Staff member created successfully by " + shared.Operator(ctx))

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetStaff retrieves staff based on query parameters.
// @Summary Get all staff
// @Tags Staff
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param keyword query string false "Search by name or phone"
// @Param position_id query string false "Filter by position ID"
// @Param hotel_id query string false "Filter by hotel ID"
// @Success 200 {object} response.Data[dto.GetStaffResponse] "List of staff"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff [get]
func (handler *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldName, model.FieldSalary)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if keyword := r.URL.Query().Get(constant.RequestParamKeyword); keyword != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterByKeyword(keyword, model.TableName, model.FieldName, model.FieldPhone))
	}

	for _, field := range []string{model.FieldPositionID, model.FieldHotelID} {
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
		log.Error().Err(err).Msg("failed to get staff")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetStaffByID retrieves a staff member by its ID.
// @Summary Get a staff member by ID
// @Tags Staff
// @Produce json
// @Param id path string true "Staff member ID"
// @Success 200 {object} response.Data[dto.StaffResponse] "Staff member details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{id} [get]
func (handler *Handler) GetStaffByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff member by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateStaff updates an existing staff member by its ID.
// @Summary Update a staff member by ID
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff member ID"
// @Param request body dto.UpdateStaffRequest true "Update Staff Request"
// @Success 200 {object} response.Message "Staff member updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{id} [patch]
func (handler *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStaff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStaffRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staff member")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff member updated successfully by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Staff member updated successfully")
}

// DeleteStaff deletes a staff member by its ID.
// @Summary Delete a staff member by ID
// @Tags Staff
// @Produce json
// @Param id path string true "Staff member ID"
// @Success 200 {object} response.Message "Staff member deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff/{id} [delete]
func (handler *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStaff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete staff member")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff member deleted successfully by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Staff member deleted successfully")
}
