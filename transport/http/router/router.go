package router

import (
	"github.com/go-chi/chi/v5"

	"innkeep/internal/handlers/auth"
	"innkeep/internal/handlers/card"
	"innkeep/internal/handlers/character"
	"innkeep/internal/handlers/hotel"
	"innkeep/internal/handlers/message"
	"innkeep/internal/handlers/reservation"
	"innkeep/internal/handlers/room"
	"innkeep/internal/handlers/student"
	"innkeep/internal/handlers/user"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Hotel       hotel.Handler
	Room        room.Handler
	Reservation reservation.Handler
	User        user.Handler
	Message     message.Handler
	Character   character.Handler
	Student     student.Handler
	Card        card.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Message.Router(routerGroup)
		r.DomainHandlers.Character.Router(routerGroup)
		r.DomainHandlers.Student.Router(routerGroup)
		r.DomainHandlers.Card.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
