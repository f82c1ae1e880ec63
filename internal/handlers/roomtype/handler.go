package roomtype

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/roomtype/model"
	"hotel/internal/domains/roomtype/model/dto"
	"hotel/internal/domains/roomtype/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomType
	otel    otel.Otel
}

func New(service service.RoomType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomType)
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Get("/{id}", handler.GetRoomTypeByID)
		routerGroup.Patch("/{id}", handler.UpdateRoomType)
		routerGroup.Delete("/{id}", handler.DeleteRoomType)
	})
}

// CreateRoomType handles the creation of a new room type.
// @Summary Create a new room type
// @Description Create a room type with its nightly price, guest capacity and an optional image.
// @Tags RoomType
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Room type name"
// @Param price formData number true "Nightly price"
// @Param max_guests formData integer true "Bookings a room of this type holds per night"
// @Param image formData file false "Room type image"
// @Success 201 {object} response.Data[dto.RoomTypeResponse] "Room type created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types [post]
func (handler *Handler) CreateRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.CreateRoomTypeRequest{
		Name: request.FormValue(model.FieldName),
	}

	if price := shared.ConvertStringToFloat(request.FormValue(model.FieldPrice)); price != nil {
		req.Price = *price
	}

	if maxGuests := shared.ConvertStringToInt(request.FormValue(model.FieldMaxGuests)); maxGuests != nil {
		req.MaxGuests = *maxGuests
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	roomType, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room type created successfully by " + shared.Operator(ctx))

	response.WithJSON(writer, http.StatusCreated, roomType)
}

// GetRoomTypes retrieves room types based on query parameters.
// @Summary Get all room types
// @Tags RoomType
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param keyword query string false "Search by name"
// @Success 200 {object} response.Data[dto.GetRoomTypesResponse] "List of room types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types [get]
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldName, model.FieldPrice, model.FieldMaxGuests)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if keyword := r.URL.Query().Get(constant.RequestParamKeyword); keyword != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterByKeyword(keyword, model.TableName, model.FieldName))
	}

	roomTypes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, roomTypes)
}

// GetRoomTypeByID retrieves a room type by its ID.
// @Summary Get a room type by ID
// @Tags RoomType
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} response.Data[dto.RoomTypeResponse] "Room type details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [get]
func (handler *Handler) GetRoomTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	roomType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, roomType)
}

// UpdateRoomType updates an existing room type by its ID.
// @Summary Update a room type by ID
// @Description Existing rooms keep their own price. Existing bookings keep the price they were booked at.
// @Tags RoomType
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room type ID"
// @Param name formData string false "Room type name"
// @Param price formData number false "Nightly price"
// @Param max_guests formData integer false "Bookings a room of this type holds per night"
// @Param image formData file false "Room type image"
// @Success 200 {object} response.Message "Room type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [patch]
func (handler *Handler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UpdateRoomTypeRequest{
		Name:      r.FormValue(model.FieldName),
		Price:     shared.ConvertStringToFloat(r.FormValue(model.FieldPrice)),
		MaxGuests: shared.ConvertStringToInt(r.FormValue(model.FieldMaxGuests)),
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type updated successfully by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Room type updated successfully")
}

// DeleteRoomType deletes a room type that no room uses.
// @Summary Delete a room type by ID
// @Tags RoomType
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} response.Message "Room type deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [delete]
func (handler *Handler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type deleted successfully by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Room type deleted successfully")
}
