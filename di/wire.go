//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"innkeep/config"
	"innkeep/infras/jwt"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/infras/redis"
	"innkeep/infras/s3"
	"innkeep/permissions"
	"innkeep/shared/cache"
	"innkeep/transport/http"
	"innkeep/transport/http/middleware"
	"innkeep/transport/http/router"

	authService "innkeep/internal/domains/auth/service"
	cardRepository "innkeep/internal/domains/card/repository"
	cardService "innkeep/internal/domains/card/service"
	characterRepository "innkeep/internal/domains/character/repository"
	characterService "innkeep/internal/domains/character/service"
	hotelRepository "innkeep/internal/domains/hotel/repository"
	hotelService "innkeep/internal/domains/hotel/service"
	messageRepository "innkeep/internal/domains/message/repository"
	messageService "innkeep/internal/domains/message/service"
	reservationRepository "innkeep/internal/domains/reservation/repository"
	reservationService "innkeep/internal/domains/reservation/service"
	roomRepository "innkeep/internal/domains/room/repository"
	roomService "innkeep/internal/domains/room/service"
	studentRepository "innkeep/internal/domains/student/repository"
	studentService "innkeep/internal/domains/student/service"
	userRepository "innkeep/internal/domains/user/repository"
	userService "innkeep/internal/domains/user/service"

	authHandler "innkeep/internal/handlers/auth"
	cardHandler "innkeep/internal/handlers/card"
	characterHandler "innkeep/internal/handlers/character"
	hotelHandler "innkeep/internal/handlers/hotel"
	messageHandler "innkeep/internal/handlers/message"
	reservationHandler "innkeep/internal/handlers/reservation"
	roomHandler "innkeep/internal/handlers/room"
	studentHandler "innkeep/internal/handlers/student"
	userHandler "innkeep/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var messageDomain = wire.NewSet(
	messageRepository.New,
	messageService.New,
)

var characterDomain = wire.NewSet(
	characterRepository.New,
	characterService.New,
)

var studentDomain = wire.NewSet(
	studentRepository.New,
	studentService.New,
)

var cardDomain = wire.NewSet(
	cardRepository.New,
	cardService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	roomDomain,
	reservationDomain,
	userDomain,
	authDomain,
	messageDomain,
	characterDomain,
	studentDomain,
	cardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	hotelHandler.New,
	roomHandler.New,
	reservationHandler.New,
	userHandler.New,
	messageHandler.New,
	characterHandler.New,
	studentHandler.New,
	cardHandler.New,
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
