package router

import (
	"github.com/hoangfish/HotelSystemFull/internal/handlers/admin"
	"github.com/hoangfish/HotelSystemFull/internal/handlers/booking"
	"github.com/hoangfish/HotelSystemFull/internal/handlers/guest"
	"github.com/hoangfish/HotelSystemFull/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Admin   admin.Handler
	Guest   guest.Handler
	Room    room.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
