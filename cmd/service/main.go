package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "dispatch/internal/app"
	"dispatch/internal/handlers/rest/admin_assign_post"
	"dispatch/internal/handlers/rest/courier_get"
	"dispatch/internal/handlers/rest/courier_post"
	"dispatch/internal/handlers/rest/courier_put"
	"dispatch/internal/handlers/rest/couriers_get"
	"dispatch/internal/handlers/rest/feed_get"
	"dispatch/internal/handlers/rest/feed_stream"
	"dispatch/internal/handlers/rest/healthcheck_head"
	"dispatch/internal/handlers/rest/order_claim_post"
	"dispatch/internal/handlers/rest/order_reject_post"
	"dispatch/internal/handlers/rest/order_route_get"
	"dispatch/internal/handlers/rest/order_transition_post"
	"dispatch/internal/handlers/rest/ping_get"
	"dispatch/internal/handlers/rest/position_post"
	"dispatch/internal/handlers/rest/presence_put"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	"dispatch/internal/pkg/grpcclient"
	"dispatch/internal/pkg/kafka"
	metrics_system "dispatch/internal/pkg/metrics"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/pkg/middlewares/graceful_shutdown"
	"dispatch/internal/pkg/middlewares/metrics"
	"dispatch/internal/pkg/middlewares/rate_limiter"
	"dispatch/internal/pkg/middlewares/timeout"
	"dispatch/internal/pkg/objectstorage"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/token_bucket"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	healthcheckTimeout = 2 * time.Second
	limiterIdleTTL     = 10 * time.Minute

	systemMetricsInterval = 5 * time.Second
)

func main() {
	// .env читается до логгера: уровень логирования задается в нем же
	envFile := flag.String("env", dotenv.DefaultFile, "path to .env file")
	port := flag.String("port", "", "server port (overrides PORT)")
	flag.Parse()

	envLoaded, dotenvErr := dotenv.Load(*envFile)
	if dotenvErr == nil {
		dotenvErr = dotenv.OverridePort(*port)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting dispatch application")

	if dotenvErr == nil && !envLoaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}
	if dotenvErr != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", dotenvErr))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()
	startedAt := time.Now()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, log, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.Maps)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	defer func() {
		err := conn.Close()
		if err != nil {
			runLog.Error("failed to close gRPC connection",
				logger.NewField("error", err),
			)
		}
	}()

	storage, err := objectstorage.NewClient(ctx, log, &cfg.Storage)
	if err != nil {
		return fmt.Errorf("object storage: %w", err)
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, kafka.ParseBrokers(cfg.Kafka.Brokers))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	verifier, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	// appCtx живет до остановки сервера: на нем держатся трекер и подписки ленты
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	businessApp, err := application.InitializeApplication(
		appCtx,
		log,
		pool,
		pgxv5.DefaultCtxGetter,
		conn,
		storage,
		producer,
		cfg,
	)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer businessApp.Tracker.Close()
	defer businessApp.ServicePresence.Close()

	watcherErr := make(chan error, 1)
	go func() {
		defer close(watcherErr)
		if err := businessApp.Watcher.Run(appCtx); err != nil {
			watcherErr <- err
		}
	}()

	metrics_system.StartSystemMetricsCollector(appCtx, systemMetricsInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	deps := routerDeps{
		log:            log,
		isShuttingDown: &isShuttingDown,
		app:            businessApp,
		pool:           pool,
		verifier:       verifier,
		startedAt:      startedAt,
		cfg:            cfg.Server,
	}

	// основной http сервер
	// WriteTimeout снимается хендлером SSE ленты, остальные ограничены timeout middleware
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, deps),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	case err := <-watcherErr:
		return fmt.Errorf("order watcher: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	// SSE потоки не завершатся сами: закрываем ленты до Shutdown
	businessApp.ServicePresence.Close()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	stopApp()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

type routerDeps struct {
	log            logger.Logger
	isShuttingDown *atomic.Bool
	app            *application.Application
	pool           *pgxpool.Pool
	verifier       *auth.Verifier
	startedAt      time.Time
	cfg            config.HTTPServer
}

func initRouter(ongoingCtx context.Context, deps routerDeps) http.Handler {
	log, app, cfg := deps.log, deps.app, deps.cfg

	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(deps.isShuttingDown, ongoingCtx))
	router.Use(metrics.Middleware(log))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(deps.isShuttingDown, deps.pool, healthcheckTimeout)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, deps.startedAt, time.Now)).Methods("GET")

	limiter := token_bucket.NewKeyed(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst), limiterIdleTTL)

	api := router.NewRoute().Subrouter()
	api.Use(auth.Middleware(log, deps.verifier))
	api.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, limiter))

	// лента по SSE регистрируется без timeout middleware
	stream := api.NewRoute().Subrouter()
	stream.Use(auth.RequireRole(auth.RoleCourier))
	stream.Handle("/courier/feed/stream", feed_stream.New(log, app.ServicePresence, cfg.FeedHeartbeat)).Methods("GET")

	courier := api.NewRoute().Subrouter()
	courier.Use(timeout.Middleware(cfg.RequestTimeout))
	courier.Use(auth.RequireRole(auth.RoleCourier))
	courier.Handle("/courier/presence", presence_put.New(log, app.ServicePresence, time.Now)).Methods("PUT")
	courier.Handle("/courier/position", position_post.New(log, app.ServicePresence, time.Now)).Methods("POST")
	courier.Handle("/courier/feed", feed_get.New(log, app.ServicePresence)).Methods("GET")
	courier.Handle("/order/{id}/claim", order_claim_post.New(log, app.ServiceClaim)).Methods("POST")
	courier.Handle("/order/{id}/reject", order_reject_post.New(log, app.ServiceClaim)).Methods("POST")
	courier.Handle("/order/{id}/transition", order_transition_post.New(log, app.ServiceDelivery, cfg.MaxUploadBytes)).Methods("POST")
	courier.Handle("/order/{id}/route", order_route_get.New(log, app.ServiceRoute, cfg.RequestTimeout)).Methods("GET")

	admin := api.NewRoute().Subrouter()
	admin.Use(timeout.Middleware(cfg.RequestTimeout))
	admin.Use(auth.RequireRole(auth.RoleAdmin))
	admin.Handle("/courier/{id:[0-9]+}", courier_get.New(log, app.ServiceCourier)).Methods("GET")
	admin.Handle("/couriers", couriers_get.New(log, app.ServiceCourier)).Methods("GET")
	admin.Handle("/courier", courier_post.New(log, app.ServiceCourier)).Methods("POST")
	admin.Handle("/courier", courier_put.New(log, app.ServiceCourier)).Methods("PUT")
	admin.Handle("/admin/order/{id}/assign", admin_assign_post.New(log, app.ServiceAdmin)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool, healthcheckTimeout)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
