//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	notifyGateway "parcelnet/internal/gateway/kafka/notify"
	"parcelnet/internal/handlers/rest/area_post"
	"parcelnet/internal/handlers/rest/areas_get"
	"parcelnet/internal/handlers/rest/districts_get"
	"parcelnet/internal/handlers/rest/driver_post"
	"parcelnet/internal/handlers/rest/invite_post"
	"parcelnet/internal/handlers/rest/login_post"
	"parcelnet/internal/handlers/rest/otp_generate_post"
	"parcelnet/internal/handlers/rest/otp_resend_post"
	"parcelnet/internal/handlers/rest/otp_verify_post"
	"parcelnet/internal/handlers/rest/parcel_post"
	"parcelnet/internal/handlers/rest/parcel_status_patch"
	"parcelnet/internal/handlers/rest/parcels_get"
	"parcelnet/internal/handlers/rest/route_assign_post"
	"parcelnet/internal/handlers/rest/route_close_post"
	"parcelnet/internal/handlers/rest/route_post"
	"parcelnet/internal/handlers/rest/route_suggestions_get"
	"parcelnet/internal/handlers/rest/routes_get"
	"parcelnet/internal/handlers/rest/settlement_paid_post"
	"parcelnet/internal/handlers/rest/shop_earnings_get"
	"parcelnet/internal/handlers/rest/signup_post"
	"parcelnet/internal/handlers/rest/track_get"
	"parcelnet/internal/handlers/rest/zones_get"
	"parcelnet/internal/handlers/tasks/settlement_snapshot"
	"parcelnet/internal/pkg/config"
	middlewareauth "parcelnet/internal/pkg/middlewares/auth"
	"parcelnet/internal/pkg/otplimiter"
	"parcelnet/internal/pkg/token"

	areaRepo "parcelnet/internal/repository/area"
	driverRepo "parcelnet/internal/repository/driver"
	parcelRepo "parcelnet/internal/repository/parcel"
	routeRepo "parcelnet/internal/repository/route"
	settlementRepo "parcelnet/internal/repository/settlement"
	shopRepo "parcelnet/internal/repository/shop"
	userRepo "parcelnet/internal/repository/user"
	areaService "parcelnet/internal/service/area"
	authService "parcelnet/internal/service/auth"
	parcelService "parcelnet/internal/service/parcel"
	routeService "parcelnet/internal/service/route"
	settlementService "parcelnet/internal/service/settlement"

	"parcelnet/pkg/background"
	"parcelnet/pkg/logger"
	"parcelnet/pkg/querier"
	"parcelnet/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	SnapshotInterval time.Duration
)

type Application struct {
	ServiceAuth       ServiceAuth
	ServiceParcel     ServiceParcel
	ServiceRoute      ServiceRoute
	ServiceSettlement ServiceSettlement
	ServiceArea       ServiceArea
	TokenParser       middlewareauth.TokenParser
	BackgroundWorkers *background.Worker
}

type ServiceAuth interface {
	login_post.Service
	signup_post.Service
	invite_post.Service
	driver_post.Service
}

type ServiceParcel interface {
	parcel_post.Service
	parcels_get.Service
	parcel_status_patch.Service
	track_get.Service
	otp_generate_post.Service
	otp_resend_post.Service
	otp_verify_post.Service
}

type ServiceRoute interface {
	route_post.Service
	routes_get.Service
	route_assign_post.Service
	route_close_post.Service
	route_suggestions_get.Service
}

type ServiceSettlement interface {
	shop_earnings_get.Service
	settlement_paid_post.Service
}

type ServiceArea interface {
	districts_get.Service
	areas_get.Service
	zones_get.Service
	area_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSnapshotInterval,

		provideUserRepository,
		provideShopRepository,
		provideDriverRepository,
		provideParcelRepository,
		provideRouteRepository,
		provideSettlementRepository,
		provideAreaRepository,

		provideTokenIssuer,
		provideOTPLimiter,
		provideNotifyGateway,

		provideServiceAuth,
		provideServiceParcel,
		provideServiceRoute,
		provideServiceSettlement,
		provideServiceArea,

		provideSettlementSnapshotTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceRoute), new(*routeService.Route)),
		wire.Bind(new(ServiceSettlement), new(*settlementService.Settlement)),
		wire.Bind(new(ServiceArea), new(*areaService.Area)),
		wire.Bind(new(middlewareauth.TokenParser), new(*token.Issuer)),

		wire.Bind(new(authService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(authService.ShopRepository), new(*shopRepo.Repository)),
		wire.Bind(new(authService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(authService.TokenIssuer), new(*token.Issuer)),
		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.ShopRepository), new(*shopRepo.Repository)),
		wire.Bind(new(parcelService.AreaDirectory), new(*areaService.Area)),
		wire.Bind(new(parcelService.Notifier), new(*notifyGateway.Gateway)),
		wire.Bind(new(parcelService.AttemptLimiter), new(*otplimiter.Limiter)),
		wire.Bind(new(routeService.Repository), new(*routeRepo.Repository)),
		wire.Bind(new(routeService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(routeService.ParcelService), new(*parcelService.Parcel)),
		wire.Bind(new(settlementService.Repository), new(*settlementRepo.Repository)),
		wire.Bind(new(settlementService.ShopRepository), new(*shopRepo.Repository)),
		wire.Bind(new(settlementService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(areaService.Repository), new(*areaRepo.Repository)),

		wire.Bind(new(authService.TxManager), new(*tx.Manager)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(routeService.TxManager), new(*tx.Manager)),
		wire.Bind(new(settlementService.TxManager), new(*tx.Manager)),

		wire.Bind(new(settlement_snapshot.Service), new(*settlementService.Settlement)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideSnapshotInterval(cfg *config.Config) SnapshotInterval {
	return SnapshotInterval(cfg.Tasks.SettlementSnapshotInterval)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideShopRepository(querier *querier.Querier) *shopRepo.Repository {
	return shopRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideRouteRepository(querier *querier.Querier) *routeRepo.Repository {
	return routeRepo.New(querier)
}

func provideSettlementRepository(querier *querier.Querier) *settlementRepo.Repository {
	return settlementRepo.New(querier)
}

func provideAreaRepository(querier *querier.Querier) *areaRepo.Repository {
	return areaRepo.New(querier)
}

func provideTokenIssuer(cfg *config.Config) *token.Issuer {
	return token.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideOTPLimiter(redisClient *redis.Client, cfg *config.Config) *otplimiter.Limiter {
	return otplimiter.New(redisClient, int64(cfg.Auth.OTPMaxFailures), cfg.Auth.OTPLockWindow)
}

func provideNotifyGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *notifyGateway.Gateway {
	return notifyGateway.New(log, producer, cfg.Kafka.Topic)
}

func provideServiceAuth(
	users authService.UserRepository,
	shops authService.ShopRepository,
	drivers authService.DriverRepository,
	tokens authService.TokenIssuer,
	txManager authService.TxManager,
	cfg *config.Config,
) *authService.Auth {
	return authService.New(
		users,
		shops,
		drivers,
		tokens,
		txManager,
		cfg.Auth.SetupOTP,
		cfg.Auth.DefaultShopCommission,
	)
}

func provideServiceParcel(
	repository parcelService.Repository,
	shops parcelService.ShopRepository,
	areas parcelService.AreaDirectory,
	notifier parcelService.Notifier,
	limiter parcelService.AttemptLimiter,
	txManager parcelService.TxManager,
) *parcelService.Parcel {
	return parcelService.New(
		repository,
		shops,
		areas,
		notifier,
		limiter,
		txManager,
	)
}

func provideServiceRoute(
	repository routeService.Repository,
	drivers routeService.DriverRepository,
	parcels routeService.ParcelService,
	txManager routeService.TxManager,
) *routeService.Route {
	return routeService.New(repository, drivers, parcels, txManager)
}

func provideServiceSettlement(
	repository settlementService.Repository,
	shops settlementService.ShopRepository,
	parcels settlementService.ParcelRepository,
	txManager settlementService.TxManager,
) *settlementService.Settlement {
	return settlementService.New(repository, shops, parcels, txManager)
}

func provideServiceArea(repository areaService.Repository) *areaService.Area {
	return areaService.New(repository)
}

func provideSettlementSnapshotTask(
	log logger.Logger,
	settlementService settlement_snapshot.Service,
	interval SnapshotInterval,
) *settlement_snapshot.SettlementSnapshot {
	return settlement_snapshot.NewSettlementSnapshot(log, settlementService, time.Duration(interval))
}

func provideTaskList(
	settlementSnapshotTask *settlement_snapshot.SettlementSnapshot,
) []background.Task {
	return []background.Task{
		settlementSnapshotTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
