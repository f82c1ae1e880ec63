package router

import (
	"hotel/internal/handlers/amenity"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/guest"
	"hotel/internal/handlers/guestservice"
	"hotel/internal/handlers/hotel"
	"hotel/internal/handlers/payment"
	"hotel/internal/handlers/position"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/roomtype"
	"hotel/internal/handlers/staff"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Hotel        hotel.Handler
	RoomType     roomtype.Handler
	Room         room.Handler
	Guest        guest.Handler
	Booking      booking.Handler
	Amenity      amenity.Handler
	GuestService guestservice.Handler
	Payment      payment.Handler
	Position     position.Handler
	Staff        staff.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Amenity.Router(routerGroup)
		r.DomainHandlers.GuestService.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Position.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
