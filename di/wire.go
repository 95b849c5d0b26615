//go:build wireinject
// +build wireinject

package di

import (
	"washly/config"
	"washly/infras/jwt"
	"washly/infras/kafka"
	"washly/infras/otel"
	"washly/infras/postgres"
	"washly/infras/redis"
	"washly/infras/s3"
	"washly/permissions"
	"washly/shared/cache"
	"washly/transport/http"
	"washly/transport/http/middleware"
	"washly/transport/http/router"

	"github.com/google/wire"

	authService "washly/internal/domains/auth/service"
	bookingRepository "washly/internal/domains/booking/repository"
	bookingService "washly/internal/domains/booking/service"
	carRepository "washly/internal/domains/car/repository"
	carService "washly/internal/domains/car/service"
	notificationRepository "washly/internal/domains/notification/repository"
	notificationService "washly/internal/domains/notification/service"
	reviewRepository "washly/internal/domains/review/repository"
	reviewService "washly/internal/domains/review/service"
	servicemenuRepository "washly/internal/domains/servicemenu/repository"
	servicemenuService "washly/internal/domains/servicemenu/service"
	transactionGateway "washly/internal/domains/transaction/gateway"
	transactionRepository "washly/internal/domains/transaction/repository"
	transactionService "washly/internal/domains/transaction/service"
	transactionWebhook "washly/internal/domains/transaction/webhook"
	userRepository "washly/internal/domains/user/repository"
	userService "washly/internal/domains/user/service"
	washerRepository "washly/internal/domains/washer/repository"
	washerService "washly/internal/domains/washer/service"

	authHandler "washly/internal/handlers/auth"
	bookingHandler "washly/internal/handlers/booking"
	carHandler "washly/internal/handlers/car"
	notificationHandler "washly/internal/handlers/notification"
	reviewHandler "washly/internal/handlers/review"
	servicemenuHandler "washly/internal/handlers/servicemenu"
	transactionHandler "washly/internal/handlers/transaction"
	userHandler "washly/internal/handlers/user"
	washerHandler "washly/internal/handlers/washer"
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

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var carDomain = wire.NewSet(
	carRepository.New,
	carService.New,
)

var washerDomain = wire.NewSet(
	washerRepository.New,
	washerService.New,
)

var servicemenuDomain = wire.NewSet(
	servicemenuRepository.New,
	servicemenuService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var transactionDomain = wire.NewSet(
	transactionRepository.New,
	transactionGateway.New,
	transactionWebhook.New,
	transactionService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	carDomain,
	washerDomain,
	servicemenuDomain,
	notificationDomain,
	transactionDomain,
	bookingDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	carHandler.New,
	washerHandler.New,
	servicemenuHandler.New,
	bookingHandler.New,
	transactionHandler.New,
	notificationHandler.New,
	reviewHandler.New,
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
