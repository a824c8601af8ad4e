package main

import (
	"alcyxob/athlete-tracker/internal/api"
	"alcyxob/athlete-tracker/internal/cache"
	"alcyxob/athlete-tracker/internal/config"
	"alcyxob/athlete-tracker/internal/logging"
	"alcyxob/athlete-tracker/internal/metrics"
	"alcyxob/athlete-tracker/internal/repository/mongo"
	"alcyxob/athlete-tracker/internal/service"
	"alcyxob/athlete-tracker/internal/storage"
	"alcyxob/athlete-tracker/internal/tracing"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title Athlete Tracker API
// @version 1.0
// @description Training load monitoring: wellness, sessions, RMs and ACWR analytics.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	hostname, _ := os.Hostname()
	if err := logging.Setup(cfg.Log, cfg.Sentry, cfg.Server.Environment, hostname); err != nil {
		log.Errorf("logging setup: %s", err)
	}
	defer sentry.Flush(2 * time.Second)
	log.Infof("starting athlete tracker [%s]", cfg.Server.Environment)

	// --- Tracing ---
	otelShutdown, err := tracing.Setup(cfg.Tracing)
	if err != nil {
		log.Fatalf("could not set up tracing: %s", err)
	}

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsManager := metrics.NewManager(cfg.Metrics.Namespace, cfg.Metrics.Subsystem, registry)

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %s", err)
	}
	defer func() {
		log.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("disconnect MongoDB: %s", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), time.Minute)
	if err := mongo.EnsureIndexes(indexCtx, appDB); err != nil {
		log.Errorf("ensure indexes: %s", err)
	}
	cancelIndexes()

	// --- Initialize Storage ---
	storageCtx, cancelStorage := context.WithTimeout(context.Background(), 30*time.Second)
	fileStorage, err := storage.NewS3Storage(storageCtx, cfg.S3)
	cancelStorage()
	if err != nil {
		log.Fatalf("failed to initialize S3 storage: %s", err)
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	wellnessRepo := mongo.NewMongoWellnessRepository(appDB)
	sessionRepo := mongo.NewMongoSessionRepository(appDB)
	rmRepo := mongo.NewMongoRMRepository(appDB)
	weightRepo := mongo.NewMongoWeightRepository(appDB)
	reportRepo := mongo.NewMongoReportRepository(appDB)

	// --- Initialize Services ---
	analyticsCache := cache.NewAnalyticsCache(cfg.Analytics.CacheSizeMB, cfg.Analytics.CacheTTL)
	clock := service.Clock(service.SystemClock)

	analyticsService := service.NewAnalyticsService(
		sessionRepo, userRepo, analyticsCache, metricsManager, clock,
		cfg.Analytics.DashboardWindowDays, cfg.Analytics.MonitoringWindowDays,
	)
	services := api.Services{
		Auth:      service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration),
		Users:     service.NewUserService(userRepo, analyticsCache, clock),
		Wellness:  service.NewWellnessService(wellnessRepo, userRepo, clock),
		Sessions:  service.NewSessionService(sessionRepo, userRepo, rmRepo, analyticsCache, metricsManager, clock),
		RMs:       service.NewRMService(rmRepo, clock),
		Weight:    service.NewWeightService(weightRepo, metricsManager, clock),
		Analytics: analyticsService,
		Reports:   service.NewReportService(reportRepo, analyticsService, fileStorage, metricsManager, cfg.S3.ReportURLExpiry),
	}

	// --- Initialize Gin Engine ---
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	// must precede the routes: gin copies middleware into each route when it is registered
	if cfg.Tracing.Enabled {
		router.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	api.SetupRoutes(router, cfg.JWT.Secret, services, metricsManager, registry)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %s", err)
	}
	otelShutdown()
	log.Trace("otel shut down")
	log.Info("server exiting")
}
