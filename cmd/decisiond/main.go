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

	"github.com/sindhuatluri/LOC/internal/application/usecase"
	"github.com/sindhuatluri/LOC/internal/domain/port"
	"github.com/sindhuatluri/LOC/internal/domain/service"
	"github.com/sindhuatluri/LOC/internal/infrastructure/config"
	"github.com/sindhuatluri/LOC/internal/infrastructure/messaging"
	pgRepo "github.com/sindhuatluri/LOC/internal/infrastructure/postgres"
	"github.com/sindhuatluri/LOC/internal/infrastructure/scoring"
	grpcPresentation "github.com/sindhuatluri/LOC/internal/presentation/grpc"
	"github.com/sindhuatluri/LOC/internal/presentation/rest"
	"github.com/sindhuatluri/LOC/pkg/auth"
	pkgkafka "github.com/sindhuatluri/LOC/pkg/kafka"
	"github.com/sindhuatluri/LOC/pkg/observability"
	pkgpostgres "github.com/sindhuatluri/LOC/pkg/postgres"
)

// decisionTopic is the Kafka topic the outbox relay publishes decision events to.
const decisionTopic = "loc.decisions"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})
	slog.SetDefault(logger)

	logger.Info("starting decision-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"environment", cfg.Environment,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Initialize metrics.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pgCfg := pkgpostgres.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
		AppName:  cfg.ServiceName,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database", "database", cfg.Database.Name)

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://internal/infrastructure/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	decisionRepo := pgRepo.NewDecisionRepository(pool)
	outboxRepo := pgRepo.NewOutboxRepository(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers:  cfg.Kafka.Brokers,
		ClientID: cfg.ServiceName,
	})
	defer kafkaProducer.Close()

	relay := messaging.NewOutboxRelay(outboxRepo, kafkaProducer, decisionTopic, logger)
	go relay.Run(ctx)

	// Load scoring artifacts. A failed load leaves the service running in a
	// degraded mode where every decide call reports scoring unavailable.
	var (
		approval port.ApprovalScorer
		limit    port.LimitScorer
		rate     port.RateScorer
	)
	modelsLoaded := false
	store, err := scoring.LoadModelStore(cfg.ModelDir)
	if err != nil {
		logger.Warn("failed to load scoring artifacts, serving in degraded mode",
			"model_dir", cfg.ModelDir,
			"error", err,
		)
		unavailable := scoring.NewUnavailable(err)
		approval, limit, rate = unavailable, unavailable, unavailable
	} else {
		approval, limit, rate = store.Approval(), store.Limit(), store.Rate()
		modelsLoaded = true
		logger.Info("scoring artifacts loaded", "model_dir", cfg.ModelDir)
	}

	// Wire domain services.
	deriver := service.NewFeatureDeriver()
	engine := service.NewDecisionEngine(
		deriver,
		service.NewScoringGateway(approval, limit, rate),
		service.NewDenialExplainer(),
	)

	// Wire use cases.
	decideUC := usecase.NewDecideApplication(decisionRepo, engine, deriver, logger)
	getUC := usecase.NewGetDecision(decisionRepo)
	listUC := usecase.NewListDecisions(decisionRepo)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: "loc-gateway",
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
			jwtSecret = "dev-secret-change-in-prod" // development only
		}
		jwtCfg.Secret = jwtSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewDecisionServiceHandler(decideUC, getUC, listUC, logger)
	grpcServer := grpcPresentation.NewServer(handler, cfg.GRPCAddr(), logger, jwtSvc)

	// HTTP server (decision API, health checks, metrics).
	mux := http.NewServeMux()
	rest.NewHealthHandler(logger, pool, func() bool { return modelsLoaded }).RegisterRoutes(mux)
	rest.NewDecisionHandler(decideUC, getUC, listUC, logger).RegisterRoutes(mux)
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
		if err := grpcServer.Start(); err != nil {
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
	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("decision-service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
