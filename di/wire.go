//go:build wireinject
// +build wireinject

package di

import (
	"labdesk/config"
	"labdesk/infras/jwt"
	"labdesk/infras/kafka"
	"labdesk/infras/otel"
	"labdesk/infras/postgres"
	"labdesk/infras/redis"
	"labdesk/infras/s3"
	"labdesk/permissions"
	"labdesk/shared/cache"
	"labdesk/transport/http"
	"labdesk/transport/http/middleware"
	"labdesk/transport/http/router"

	"github.com/google/wire"

	bookingRepository "labdesk/internal/domains/booking/repository"
	bookingService "labdesk/internal/domains/booking/service"
	employeeRepository "labdesk/internal/domains/employee/repository"
	employeeService "labdesk/internal/domains/employee/service"
	labRepository "labdesk/internal/domains/lab/repository"
	labService "labdesk/internal/domains/lab/service"
	notificationRepository "labdesk/internal/domains/notification/repository"
	notificationService "labdesk/internal/domains/notification/service"
	officeRepository "labdesk/internal/domains/office/repository"
	officeService "labdesk/internal/domains/office/service"
	requestRepository "labdesk/internal/domains/request/repository"
	requestService "labdesk/internal/domains/request/service"

	allocationService "labdesk/internal/domains/allocation/service"
	reportService "labdesk/internal/domains/report/service"

	authService "labdesk/internal/domains/auth/service"

	authHandler "labdesk/internal/handlers/auth"
	bookingHandler "labdesk/internal/handlers/booking"
	employeeHandler "labdesk/internal/handlers/employee"
	labHandler "labdesk/internal/handlers/lab"
	notificationHandler "labdesk/internal/handlers/notification"
	officeHandler "labdesk/internal/handlers/office"
	reportHandler "labdesk/internal/handlers/report"
	requestHandler "labdesk/internal/handlers/request"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var labDomain = wire.NewSet(
	labRepository.New,
	labService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var requestDomain = wire.NewSet(
	requestRepository.New,
	requestService.New,
)

var allocationDomain = wire.NewSet(
	allocationService.New,
)

var officeDomain = wire.NewSet(
	officeRepository.New,
	officeService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	labDomain,
	bookingDomain,
	requestDomain,
	allocationDomain,
	officeDomain,
	reportDomain,
	notificationDomain,
	employeeDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	labHandler.New,
	bookingHandler.New,
	requestHandler.New,
	officeHandler.New,
	reportHandler.New,
	employeeHandler.New,
	notificationHandler.New,
	router.New,
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
