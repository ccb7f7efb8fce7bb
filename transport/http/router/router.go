package router

import (
	"concierge/internal/handlers/auth"
	"concierge/internal/handlers/booking"
	"concierge/internal/handlers/chat"
	"concierge/internal/handlers/destination"
	"concierge/internal/handlers/dining"
	"concierge/internal/handlers/event"
	"concierge/internal/handlers/guest"
	"concierge/internal/handlers/request"
	"concierge/internal/handlers/room"
	"concierge/internal/handlers/spa"
	"concierge/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Guest       guest.Handler
	Room        room.Handler
	Booking     booking.Handler
	Request     request.Handler
	Chat        chat.Handler
	Event       event.Handler
	Spa         spa.Handler
	Dining      dining.Handler
	Destination destination.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Request.Router(routerGroup)
		r.DomainHandlers.Chat.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Spa.Router(routerGroup)
		r.DomainHandlers.Dining.Router(routerGroup)
		r.DomainHandlers.Destination.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
