package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "parcelnet/internal/app"
	"parcelnet/internal/handlers/rest/area_post"
	"parcelnet/internal/handlers/rest/areas_get"
	"parcelnet/internal/handlers/rest/districts_get"
	"parcelnet/internal/handlers/rest/driver_post"
	"parcelnet/internal/handlers/rest/healthcheck_head"
	"parcelnet/internal/handlers/rest/invite_post"
	"parcelnet/internal/handlers/rest/login_post"
	"parcelnet/internal/handlers/rest/otp_generate_post"
	"parcelnet/internal/handlers/rest/otp_resend_post"
	"parcelnet/internal/handlers/rest/otp_verify_post"
	"parcelnet/internal/handlers/rest/parcel_post"
	"parcelnet/internal/handlers/rest/parcel_status_patch"
	"parcelnet/internal/handlers/rest/parcels_get"
	"parcelnet/internal/handlers/rest/ping_get"
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
	"parcelnet/internal/pkg/config"
	"parcelnet/internal/pkg/dotenv"
	"parcelnet/internal/pkg/kafka"
	metrics_system "parcelnet/internal/pkg/metrics"
	middlewareauth "parcelnet/internal/pkg/middlewares/auth"
	"parcelnet/internal/pkg/middlewares/graceful_shutdown"
	"parcelnet/internal/pkg/middlewares/metrics"
	"parcelnet/internal/pkg/middlewares/rate_limiter"
	"parcelnet/internal/pkg/middlewares/timeout"
	"parcelnet/internal/pkg/postgres"
	"parcelnet/internal/pkg/redisconn"
	"parcelnet/pkg/logger"
	"parcelnet/pkg/logger/zap_adapter"
	"parcelnet/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
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

	mainLog.Info("starting parcelnet application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
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

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redisconn.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close redis client",
				logger.NewField("error", err),
			)
		}
	}()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
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
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
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
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

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
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// публичные маршруты: трекинг и справочники не требуют токена
	router.Handle("/auth/login", login_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/auth/signup", signup_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/track/{id}", track_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/districts", districts_get.New(log, app.ServiceArea)).Methods("GET")
	router.Handle("/districts/{district}/areas", areas_get.New(log, app.ServiceArea)).Methods("GET")
	router.Handle("/districts/{district}/zones", zones_get.New(log, app.ServiceArea)).Methods("GET")

	authed := router.NewRoute().Subrouter()
	authed.Use(middlewareauth.Middleware(log, app.TokenParser))

	authed.Handle("/auth/invite", invite_post.New(log, app.ServiceAuth)).Methods("POST")
	authed.Handle("/drivers", driver_post.New(log, app.ServiceAuth)).Methods("POST")

	authed.Handle("/parcels", parcel_post.New(log, app.ServiceParcel)).Methods("POST")
	authed.Handle("/parcels", parcels_get.New(log, app.ServiceParcel)).Methods("GET")
	authed.Handle("/parcels/{id}/status", parcel_status_patch.New(log, app.ServiceParcel)).Methods("PATCH")
	authed.Handle("/parcels/{id}/otp/generate", otp_generate_post.New(log, app.ServiceParcel)).Methods("POST")
	authed.Handle("/parcels/{id}/otp/resend", otp_resend_post.New(log, app.ServiceParcel)).Methods("POST")
	authed.Handle("/parcels/{id}/otp/verify", otp_verify_post.New(log, app.ServiceParcel)).Methods("POST")

	authed.Handle("/routes", route_post.New(log, app.ServiceRoute)).Methods("POST")
	authed.Handle("/routes", routes_get.New(log, app.ServiceRoute)).Methods("GET")
	authed.Handle("/routes/suggestions", route_suggestions_get.New(log, app.ServiceRoute)).Methods("GET")
	authed.Handle("/routes/{id}/assign", route_assign_post.New(log, app.ServiceRoute)).Methods("POST")
	authed.Handle("/routes/{id}/close", route_close_post.New(log, app.ServiceRoute)).Methods("POST")

	authed.Handle("/shops/{id}/earnings", shop_earnings_get.New(log, app.ServiceSettlement)).Methods("GET")
	authed.Handle("/settlements/paid", settlement_paid_post.New(log, app.ServiceSettlement)).Methods("POST")

	authed.Handle("/areas", area_post.New(log, app.ServiceArea)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
