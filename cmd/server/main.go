package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propstead/financing-service/internal/application/usecase"
	"github.com/propstead/financing-service/internal/domain/port"
	"github.com/propstead/financing-service/internal/domain/service"
	cacheAdapter "github.com/propstead/financing-service/internal/infrastructure/cache"
	catalogMemory "github.com/propstead/financing-service/internal/infrastructure/catalog/memory"
	catalogPostgres "github.com/propstead/financing-service/internal/infrastructure/catalog/postgres"
	"github.com/propstead/financing-service/internal/infrastructure/config"
	"github.com/propstead/financing-service/internal/infrastructure/messaging"
	profileMemory "github.com/propstead/financing-service/internal/infrastructure/profile/memory"
	profilePostgres "github.com/propstead/financing-service/internal/infrastructure/profile/postgres"
	"github.com/propstead/financing-service/internal/observability"
	grpcPresentation "github.com/propstead/financing-service/internal/presentation/grpc"
	"github.com/propstead/financing-service/internal/presentation/rest"
)

func main() {
	cfg := config.Load()
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logger.Info("starting financing service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Collaborator adapters ---------------------------------------------
	var (
		catalogProvider port.LenderCatalogProvider
		profileSource   port.BorrowerProfileSource
	)
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			logger.Error("database ping failed", "error", err)
			os.Exit(1)
		}
		logger.Info("connected to database")

		catalogProvider = catalogPostgres.NewCatalogRepo(pool)
		profileSource = profilePostgres.NewProfileRepo(pool)
	} else {
		logger.Info("no database configured, using in-memory catalog and profiles")
		catalogProvider = catalogMemory.NewCatalogProvider(catalogMemory.SeedCatalog())
		profileSource = profileMemory.NewProfileSource(profileMemory.SeedProfiles())
	}

	var assessmentCache port.AssessmentCache
	if cfg.Redis.Addr != "" {
		redisCache := cacheAdapter.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer redisCache.Close()
		assessmentCache = redisCache
		logger.Info("assessment cache backed by redis", "addr", cfg.Redis.Addr)
	} else {
		assessmentCache = cacheAdapter.NewMemoryCache()
	}

	var publisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := messaging.NewKafkaEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info("publishing events to kafka", "topic", cfg.Kafka.Topic)
	} else {
		publisher = messaging.NewLogEventPublisher(logger)
	}

	// --- Domain services ----------------------------------------------------
	engine := service.NewAmortizationEngine()
	scorer := service.NewCreditRiskScorer()
	matcher := service.NewFinancingOptionMatcher(engine, scorer)
	evaluator := service.NewPreQualificationEvaluator(engine, scorer)

	// --- Use cases ----------------------------------------------------------
	computeUC := usecase.NewComputeAmortizationUseCase(engine)
	rankUC := usecase.NewRankFinancingOptionsUseCase(catalogProvider, matcher, publisher, logger)
	prequalUC := usecase.NewEvaluatePreQualificationUseCase(profileSource, engine, evaluator, publisher, logger)
	creditRiskUC := usecase.NewEvaluateCreditRiskUseCase(profileSource, evaluator, assessmentCache, cfg.Redis.TTL, logger)

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewFinancingHandler(computeUC, rankUC, prequalUC, creditRiskUC)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP health + metrics server ---------------------------------------
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	rest.NewHealthHandler(logger, nil).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("financing service stopped")
}
