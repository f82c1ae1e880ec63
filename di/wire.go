//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/mailer"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/internal/events"
	"hotel/shared/cache"
	"hotel/shared/transaction"
	"hotel/transport/console"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	amenityRepository "hotel/internal/domains/amenity/repository"
	amenityService "hotel/internal/domains/amenity/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	guestRepository "hotel/internal/domains/guest/repository"
	guestService "hotel/internal/domains/guest/service"
	guestServiceRepository "hotel/internal/domains/guestservice/repository"
	guestServiceService "hotel/internal/domains/guestservice/service"
	hotelRepository "hotel/internal/domains/hotel/repository"
	hotelService "hotel/internal/domains/hotel/service"
	paymentRepository "hotel/internal/domains/payment/repository"
	paymentService "hotel/internal/domains/payment/service"
	positionRepository "hotel/internal/domains/position/repository"
	positionService "hotel/internal/domains/position/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	roomTypeRepository "hotel/internal/domains/roomtype/repository"
	roomTypeService "hotel/internal/domains/roomtype/service"
	staffRepository "hotel/internal/domains/staff/repository"
	staffService "hotel/internal/domains/staff/service"

	amenityHandler "hotel/internal/handlers/amenity"
	bookingHandler "hotel/internal/handlers/booking"
	guestHandler "hotel/internal/handlers/guest"
	guestServiceHandler "hotel/internal/handlers/guestservice"
	hotelHandler "hotel/internal/handlers/hotel"
	paymentHandler "hotel/internal/handlers/payment"
	positionHandler "hotel/internal/handlers/position"
	roomHandler "hotel/internal/handlers/room"
	roomTypeHandler "hotel/internal/handlers/roomtype"
	staffHandler "hotel/internal/handlers/staff"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	transaction.New,
	events.NewPublisher,
)

var catalogDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
	roomTypeRepository.New,
	roomTypeService.New,
	roomRepository.New,
	roomService.New,
	amenityRepository.New,
	amenityService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
	guestServiceRepository.New,
	guestServiceService.New,
)

var reservationDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	paymentRepository.New,
	paymentService.New,
)

var staffDomain = wire.NewSet(
	positionRepository.New,
	positionService.New,
	staffRepository.New,
	staffService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	guestDomain,
	reservationDomain,
	staffDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	roomTypeHandler.New,
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	amenityHandler.New,
	guestServiceHandler.New,
	paymentHandler.New,
	positionHandler.New,
	staffHandler.New,
	router.New,
)

var notifications = wire.NewSet(
	mailer.New,
	events.NewNotifier,
	events.NewConsumer,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeConsole() *console.Console {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		wire.Struct(new(console.Services), "Booking", "Payment", "Guest", "RoomType", "Room", "Amenity", "GuestService"),
		console.New,
	)

	return &console.Console{}
}

func InitializeNotifier() *events.Consumer {
	wire.Build(
		configurations,
		otel.New,
		kafka.New,
		notifications,
	)

	return &events.Consumer{}
}
