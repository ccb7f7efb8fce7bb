//go:build wireinject
// +build wireinject

package di

import (
	"concierge/config"
	"concierge/infras/imaging"
	"concierge/infras/jwt"
	"concierge/infras/kafka"
	"concierge/infras/otel"
	"concierge/infras/postgres"
	"concierge/infras/redis"
	"concierge/infras/s3"
	"concierge/permissions"
	"concierge/shared/cache"
	"concierge/shared/media"
	"concierge/transport/http"
	"concierge/transport/http/middleware"
	"concierge/transport/http/router"

	"github.com/google/wire"

	authService "concierge/internal/domains/auth/service"
	bookingRepository "concierge/internal/domains/booking/repository"
	bookingService "concierge/internal/domains/booking/service"
	"concierge/internal/domains/chat/hub"
	chatRepository "concierge/internal/domains/chat/repository"
	chatService "concierge/internal/domains/chat/service"
	destinationRepository "concierge/internal/domains/destination/repository"
	destinationService "concierge/internal/domains/destination/service"
	diningRepository "concierge/internal/domains/dining/repository"
	diningService "concierge/internal/domains/dining/service"
	eventRepository "concierge/internal/domains/event/repository"
	eventService "concierge/internal/domains/event/service"
	guestRepository "concierge/internal/domains/guest/repository"
	guestService "concierge/internal/domains/guest/service"
	requestRepository "concierge/internal/domains/request/repository"
	requestService "concierge/internal/domains/request/service"
	roomRepository "concierge/internal/domains/room/repository"
	roomService "concierge/internal/domains/room/service"
	spaRepository "concierge/internal/domains/spa/repository"
	spaService "concierge/internal/domains/spa/service"
	submissionService "concierge/internal/domains/submission/service"
	userRepository "concierge/internal/domains/user/repository"
	userService "concierge/internal/domains/user/service"

	authHandler "concierge/internal/handlers/auth"
	bookingHandler "concierge/internal/handlers/booking"
	chatHandler "concierge/internal/handlers/chat"
	destinationHandler "concierge/internal/handlers/destination"
	diningHandler "concierge/internal/handlers/dining"
	eventHandler "concierge/internal/handlers/event"
	guestHandler "concierge/internal/handlers/guest"
	requestHandler "concierge/internal/handlers/request"
	roomHandler "concierge/internal/handlers/room"
	spaHandler "concierge/internal/handlers/spa"
	userHandler "concierge/internal/handlers/user"
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
	s3.New,
	kafka.New,
	imaging.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	media.New,
)

var realtime = wire.NewSet(
	hub.New,
	wire.Bind(new(hub.Broadcaster), new(*hub.Hub)),
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	bookingRepository.New,
	bookingService.New,
)

var requestDomain = wire.NewSet(
	requestRepository.NewCategory,
	requestRepository.NewItem,
	requestRepository.NewServiceRequest,
	requestService.New,
	chatRepository.New,
	chatService.New,
	submissionService.New,
)

var catalogDomain = wire.NewSet(
	eventRepository.New,
	eventRepository.NewReservation,
	eventService.New,
	spaRepository.New,
	spaRepository.NewBooking,
	spaService.New,
	diningRepository.New,
	diningRepository.NewReservation,
	diningService.New,
	destinationRepository.New,
	destinationService.New,
)

var domains = wire.NewSet(
	authDomain,
	guestDomain,
	roomDomain,
	requestDomain,
	catalogDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	guestHandler.New,
	roomHandler.New,
	bookingHandler.New,
	requestHandler.New,
	chatHandler.New,
	eventHandler.New,
	spaHandler.New,
	diningHandler.New,
	destinationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		realtime,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
