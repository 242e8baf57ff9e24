package router

import (
	"labdesk/internal/handlers/auth"
	"labdesk/internal/handlers/booking"
	"labdesk/internal/handlers/employee"
	"labdesk/internal/handlers/lab"
	"labdesk/internal/handlers/notification"
	"labdesk/internal/handlers/office"
	"labdesk/internal/handlers/report"
	"labdesk/internal/handlers/request"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Lab          lab.Handler
	Booking      booking.Handler
	Request      request.Handler
	Office       office.Handler
	Report       report.Handler
	Employee     employee.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Lab.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Request.Router(routerGroup)
		r.DomainHandlers.Office.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
