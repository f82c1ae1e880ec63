package hotel

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotel", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHotel)
		routerGroup.Get("/", handler.GetHotel)
		routerGroup.Patch("/", handler.UpdateHotel)
	})
}

// CreateHotel registers the hotel. Only one hotel can exist.
// @Summary Register the hotel
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Create Hotel Request"
// @Success 201 {object} response.Data[dto.HotelResponse] "Hotel created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotel [post]
func (handler *Handler) CreateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	req := dto.CreateHotelRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	hotel, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Hotel created by " + shared.Operator(ctx))

	response.WithJSON(writer, http.StatusCreated, hotel)
}

// GetHotel returns the hotel.
// @Summary Get the hotel
// @Tags Hotel
// @Produce json
// @Success 200 {object} response.Data[dto.HotelResponse] "Hotel details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotel [get]
func (handler *Handler) GetHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
	defer scope.End()

	hotel, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hotel)
}

// UpdateHotel updates the hotel.
// @Summary Update the hotel
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.UpdateHotelRequest true "Update Hotel Request"
// @Success 200 {object} response.Message "Hotel updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotel [patch]
func (handler *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	req := dto.UpdateHotelRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel updated by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Hotel updated successfully")
}
