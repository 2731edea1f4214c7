//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/gateway/grpc/maps"
	"dispatch/internal/gateway/kafka/delivery_events"
	"dispatch/internal/gateway/storage/proofs"
	"dispatch/internal/handlers/rest/admin_assign_post"
	"dispatch/internal/handlers/rest/courier_get"
	"dispatch/internal/handlers/rest/courier_post"
	"dispatch/internal/handlers/rest/courier_put"
	"dispatch/internal/handlers/rest/couriers_get"
	"dispatch/internal/handlers/rest/feed_get"
	"dispatch/internal/handlers/rest/feed_stream"
	"dispatch/internal/handlers/rest/order_claim_post"
	"dispatch/internal/handlers/rest/order_reject_post"
	"dispatch/internal/handlers/rest/order_route_get"
	"dispatch/internal/handlers/rest/order_transition_post"
	"dispatch/internal/handlers/rest/position_post"
	"dispatch/internal/handlers/rest/presence_put"
	"dispatch/internal/handlers/tasks/city_refresh"
	"dispatch/internal/handlers/tasks/feed_resync"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/order_handle"
	"dispatch/internal/repository"
	cityRepo "dispatch/internal/repository/city"
	courierRepo "dispatch/internal/repository/courier"
	loyaltyRepo "dispatch/internal/repository/loyalty"
	orderRepo "dispatch/internal/repository/order"
	"dispatch/internal/repository/orderwatch"
	"dispatch/internal/repository/positions"
	adminService "dispatch/internal/service/admin"
	cityService "dispatch/internal/service/city"
	claimService "dispatch/internal/service/claim"
	courierService "dispatch/internal/service/courier"
	deliveryService "dispatch/internal/service/delivery"
	orderService "dispatch/internal/service/order"
	presenceService "dispatch/internal/service/presence"
	routeService "dispatch/internal/service/route"
	"dispatch/internal/service/tracking"
	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"dispatch/pkg/tx"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	"google.golang.org/grpc"
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceClaim      ServiceClaim
	ServiceDelivery   ServiceDelivery
	ServiceAdmin      ServiceAdmin
	ServicePresence   ServicePresence
	ServiceRoute      ServiceRoute
	Watcher           *orderwatch.Watcher
	Tracker           *tracking.Publisher
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
}

type ServiceClaim interface {
	order_claim_post.Service
	order_reject_post.Service
}

type ServiceDelivery interface {
	order_transition_post.Service
}

type ServiceAdmin interface {
	admin_assign_post.Service
}

type ServicePresence interface {
	presence_put.Service
	position_post.Service
	feed_get.Service
	feed_stream.Service
	Close()
}

type ServiceRoute interface {
	order_route_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	storage *minio.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideCourierRepository,
		provideOrderRepository,
		provideCityRepository,
		provideLoyaltyRepository,
		positions.New,
		provideOrderWatcher,

		provideMapsGateway,
		provideProofStorage,
		provideEventPublisher,

		provideCityCatalog,
		provideServiceCourier,
		provideServiceClaim,
		provideTracker,
		provideServiceDelivery,
		provideServiceAdmin,
		provideServicePresence,
		provideServiceRoute,

		provideCityRefreshTask,
		provideFeedResyncTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceClaim), new(*claimService.Service)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceAdmin), new(*adminService.Admin)),
		wire.Bind(new(ServicePresence), new(*presenceService.Service)),
		wire.Bind(new(ServiceRoute), new(*routeService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideOrderRepository,
		provideEventPublisher,
		provideStatusHandlerFactory,
		provideOrderService,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

const (
	claimRetryInitialInterval = 20 * time.Millisecond
	claimRetryMaxInterval     = 200 * time.Millisecond
	claimRetryMaxElapsedTime  = 2 * time.Second

	watchRetryInitialInterval = 500 * time.Millisecond
	watchRetryMaxInterval     = 15 * time.Second
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, tx.WithErrorTranslator(repository.TranslateError))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCityRepository(querier *querier.Querier) *cityRepo.Repository {
	return cityRepo.New(querier)
}

func provideLoyaltyRepository(querier *querier.Querier) *loyaltyRepo.Repository {
	return loyaltyRepo.New(querier)
}

// provideOrderWatcher переподключает LISTEN без ограничения по числу попыток.
func provideOrderWatcher(log logger.Logger, repo *orderRepo.Repository, pool *pgxpool.Pool) *orderwatch.Watcher {
	retryConfig := retrier.Config{
		InitialInterval: watchRetryInitialInterval,
		MaxInterval:     watchRetryMaxInterval,
		Randomization:   0.5,
		Multiplier:      2.0,
	}
	return orderwatch.New(log, repo, orderwatch.NewPgListener(pool), backoff_adapter.New(retryConfig))
}

func provideMapsGateway(conn *grpc.ClientConn) *maps.Gateway {
	return maps.New(maps.NewClient(conn))
}

func provideProofStorage(client *minio.Client, cfg *config.Config) *proofs.Storage {
	return proofs.New(client, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) *delivery_events.Publisher {
	return delivery_events.New(producer, cfg.Kafka.DeliveryEventsTopic)
}

func provideCityCatalog(repo *cityRepo.Repository, cfg *config.Config) *cityService.Catalog {
	return cityService.New(repo, cfg.Dispatch.DefaultCity)
}

func provideServiceCourier(repo *courierRepo.Repository, catalog *cityService.Catalog) *courierService.Courier {
	return courierService.New(repo, catalog)
}

// provideServiceClaim повторяет захват только при конфликте сериализации или недоступности хранилища.
func provideServiceClaim(
	log logger.Logger,
	repo *orderRepo.Repository,
	couriers *courierService.Courier,
	events *delivery_events.Publisher,
	txManager *tx.Manager,
	cfg *config.Config,
) *claimService.Service {
	retryConfig := retrier.Config{
		InitialInterval: claimRetryInitialInterval,
		MaxInterval:     claimRetryMaxInterval,
		MaxElapsedTime:  claimRetryMaxElapsedTime,
		Randomization:   0.5,
		Multiplier:      2.0,
		MaxRetries:      cfg.Dispatch.ClaimMaxRetries,
		ShouldRetry: func(err error) bool {
			return errors.Is(err, entities.ErrStoreUnavailable)
		},
	}
	return claimService.New(log, repo, couriers, events, txManager, backoff_adapter.New(retryConfig))
}

func provideTracker(
	ctx context.Context,
	log logger.Logger,
	repo *orderRepo.Repository,
	store *positions.Store,
	cfg *config.Config,
) *tracking.Publisher {
	return tracking.New(ctx, log, repo, store, tracking.Config{
		SampleInterval:    cfg.Tracking.SampleInterval,
		MaxInterval:       cfg.Tracking.MaxInterval,
		MinDistanceMeters: cfg.Tracking.MinDistanceMeters,
		PublishTimeout:    cfg.Tracking.PublishTimeout,
	})
}

func provideServiceDelivery(
	log logger.Logger,
	repo *orderRepo.Repository,
	loyalty *loyaltyRepo.Repository,
	couriers *courierService.Courier,
	storage *proofs.Storage,
	tracker *tracking.Publisher,
	events *delivery_events.Publisher,
	txManager *tx.Manager,
) *deliveryService.Delivery {
	return deliveryService.New(log, repo, loyalty, couriers, storage, tracker, events, txManager)
}

func provideServiceAdmin(
	log logger.Logger,
	repo *orderRepo.Repository,
	couriers *courierService.Courier,
	events *delivery_events.Publisher,
	txManager *tx.Manager,
) *adminService.Admin {
	return adminService.New(log, repo, couriers, events, txManager)
}

func provideServicePresence(
	log logger.Logger,
	watcher *orderwatch.Watcher,
	store *positions.Store,
	repo *orderRepo.Repository,
	couriers *courierService.Courier,
	catalog *cityService.Catalog,
	geocoder *maps.Gateway,
	tracker *tracking.Publisher,
	cfg *config.Config,
) *presenceService.Service {
	return presenceService.New(log, watcher, store, repo, couriers, catalog, geocoder, tracker, presenceService.Config{
		GeocodeTimeout:    cfg.Presence.GeocodeTimeout,
		CityRecheckMeters: cfg.Presence.CityRecheckMeters,
	})
}

func provideServiceRoute(repo *orderRepo.Repository, store *positions.Store, directions *maps.Gateway) *routeService.Service {
	return routeService.New(repo, store, directions)
}

func provideStatusHandlerFactory(repo *orderRepo.Repository) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(repo)
}

// provideOrderService создает orderService для обработки событий Kafka
func provideOrderService(
	factory *order_handle.StatusHandlerFactory,
	events *delivery_events.Publisher,
) *orderService.Service {
	return orderService.New(factory, events)
}

func provideCityRefreshTask(log logger.Logger, catalog *cityService.Catalog, cfg *config.Config) *city_refresh.CityRefresh {
	return city_refresh.NewCityRefresh(log, catalog, cfg.Tasks.CityRefreshInterval)
}

func provideFeedResyncTask(watcher *orderwatch.Watcher, cfg *config.Config) *feed_resync.FeedResync {
	return feed_resync.NewFeedResync(watcher, cfg.Tasks.FeedResyncInterval)
}

func provideTaskList(
	cityRefreshTask *city_refresh.CityRefresh,
	feedResyncTask *feed_resync.FeedResync,
) []background.Task {
	return []background.Task{
		cityRefreshTask,
		feedResyncTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
