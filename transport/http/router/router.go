package router

import (
	"washly/internal/handlers/auth"
	"washly/internal/handlers/booking"
	"washly/internal/handlers/car"
	"washly/internal/handlers/notification"
	"washly/internal/handlers/review"
	"washly/internal/handlers/servicemenu"
	"washly/internal/handlers/transaction"
	"washly/internal/handlers/user"
	"washly/internal/handlers/washer"
	"washly/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Car          car.Handler
	Washer       washer.Handler
	ServiceMenu  servicemenu.Handler
	Booking      booking.Handler
	Transaction  transaction.Handler
	Notification notification.Handler
	Review       review.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Car.Router(routerGroup)
		r.DomainHandlers.Washer.Router(routerGroup)
		r.DomainHandlers.ServiceMenu.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Transaction.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
