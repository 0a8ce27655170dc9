//go:build wireinject
// +build wireinject

package di

import (
	"github.com/hoangfish/HotelSystemFull/config"
	"github.com/hoangfish/HotelSystemFull/infras/jwt"
	"github.com/hoangfish/HotelSystemFull/infras/kafka"
	"github.com/hoangfish/HotelSystemFull/infras/otel"
	"github.com/hoangfish/HotelSystemFull/infras/postgres"
	"github.com/hoangfish/HotelSystemFull/infras/redis"
	"github.com/hoangfish/HotelSystemFull/infras/s3"
	"github.com/hoangfish/HotelSystemFull/permissions"
	"github.com/hoangfish/HotelSystemFull/shared/cache"
	"github.com/hoangfish/HotelSystemFull/transport/http"
	"github.com/hoangfish/HotelSystemFull/transport/http/middleware"
	"github.com/hoangfish/HotelSystemFull/transport/http/router"

	adminRepository "github.com/hoangfish/HotelSystemFull/internal/domains/admin/repository"
	adminService "github.com/hoangfish/HotelSystemFull/internal/domains/admin/service"
	bookingService "github.com/hoangfish/HotelSystemFull/internal/domains/booking/service"
	guestRepository "github.com/hoangfish/HotelSystemFull/internal/domains/guest/repository"
	guestService "github.com/hoangfish/HotelSystemFull/internal/domains/guest/service"
	roomRepository "github.com/hoangfish/HotelSystemFull/internal/domains/room/repository"
	roomService "github.com/hoangfish/HotelSystemFull/internal/domains/room/service"
	adminHandler "github.com/hoangfish/HotelSystemFull/internal/handlers/admin"
	bookingHandler "github.com/hoangfish/HotelSystemFull/internal/handlers/booking"
	guestHandler "github.com/hoangfish/HotelSystemFull/internal/handlers/guest"
	roomHandler "github.com/hoangfish/HotelSystemFull/internal/handlers/room"

	"github.com/google/wire"
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

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminService.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	adminDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	adminHandler.New,
	guestHandler.New,
	roomHandler.New,
	bookingHandler.New,
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
