package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aknathpanchal/laxmi-sub000/internal/application/usecase"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/service"
	"github.com/Aknathpanchal/laxmi-sub000/internal/infrastructure/adapter"
	"github.com/Aknathpanchal/laxmi-sub000/internal/infrastructure/cache"
	"github.com/Aknathpanchal/laxmi-sub000/internal/infrastructure/config"
	"github.com/Aknathpanchal/laxmi-sub000/internal/infrastructure/messaging"
	pgRepo "github.com/Aknathpanchal/laxmi-sub000/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/Aknathpanchal/laxmi-sub000/internal/presentation/grpc"
	"github.com/Aknathpanchal/laxmi-sub000/internal/presentation/rest"
	"github.com/Aknathpanchal/laxmi-sub000/pkg/auth"
	pkgkafka "github.com/Aknathpanchal/laxmi-sub000/pkg/kafka"
	"github.com/Aknathpanchal/laxmi-sub000/pkg/observability"
	pkgpostgres "github.com/Aknathpanchal/laxmi-sub000/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   getEnv("LOG_LEVEL", "info"),
		Format:  "json",
		Service: cfg.ServiceName,
	})
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting finance-engine",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize metrics. The /metrics endpoint is served on the HTTP port.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	productRepo := pgRepo.NewProductRepo(pool)
	loanRepo := pgRepo.NewLoanRepo(pool)
	scheduleRepo := pgRepo.NewScheduleRepo(pool)
	decisionRepo := pgRepo.NewDecisionRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	quoteCache := cache.NewRedisQuoteCache(cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer quoteCache.Close() //nolint:errcheck // best-effort close on shutdown

	creditClient := adapter.NewStubCreditBureauClient()
	fraudClient := adapter.NewStubFraudDetector()

	// Domain engines share one policy.
	policy := service.DefaultPolicy()
	eligibilityEngine := service.NewEligibilityEngine(policy)
	prepaymentCalc := service.NewPrepaymentCalculator(policy)
	analytics := service.NewScheduleAnalytics()

	// Wire use cases.
	eligibilityUC := usecase.NewEvaluateEligibilityUseCase(
		productRepo, decisionRepo, creditClient, fraudClient,
		quoteCache, publisher, eligibilityEngine, cfg.Redis.QuoteTTL,
	)
	prepaymentUC := usecase.NewQuotePrepaymentUseCase(loanRepo, scheduleRepo, productRepo, publisher, prepaymentCalc)
	analyticsUC := usecase.NewAnalyzeScheduleUseCase(scheduleRepo, publisher, analytics)
	amortizationUC := usecase.NewComputeAmortizationUseCase()

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: "laxmi-gateway",
	}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case os.Getenv("JWT_PUBLIC_KEY_FILE") != "":
		keyData, loadErr := auth.LoadKeyFromFile(os.Getenv("JWT_PUBLIC_KEY_FILE"))
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			logger.Error("JWT_SECRET, JWT_PUBLIC_KEY or JWT_PUBLIC_KEY_FILE is required")
			os.Exit(1)
		}
		jwtCfg.Secret = jwtSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewFinanceEngineHandler(eligibilityUC, prepaymentUC, analyticsUC, amortizationUC)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, func(ctx context.Context) error {
		return pkgpostgres.HealthCheck(ctx, pool)
	})
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("finance-engine stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
