package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/afrikipresse/subscription-service/internal/pkg/config"
	"github.com/afrikipresse/subscription-service/internal/pkg/database"
	"github.com/afrikipresse/subscription-service/internal/pkg/health"
	"github.com/afrikipresse/subscription-service/internal/pkg/logger"
	"github.com/afrikipresse/subscription-service/internal/pkg/middleware"
	"github.com/afrikipresse/subscription-service/internal/pkg/nats"
	nrpkg "github.com/afrikipresse/subscription-service/internal/pkg/newrelic"
	"github.com/afrikipresse/subscription-service/services/subscription/gateway"
	"github.com/afrikipresse/subscription-service/services/subscription/gateway/cinetpay"
	"github.com/afrikipresse/subscription-service/services/subscription/handler"
	"github.com/afrikipresse/subscription-service/services/subscription/repository"
	"github.com/afrikipresse/subscription-service/services/subscription/usecase"
)

func main() {
	appName := "subscription-service"
	configPath := "config/subscription.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	if !natsClient.IsConnected() {
		zapLogger.Fatal("NATS client not connected")
	}

	// Initialize repository
	subscriptionRepo := repository.NewSubscriptionRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateways
	paymentGW := cinetpay.NewClient(configs.CinetPay)
	eventGW := gateway.NewEventGW(natsClient)

	// Initialize usecase
	paymentUC, err := usecase.NewPaymentUC(configs, subscriptionRepo, paymentGW, eventGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize payment use case", logger.Err(err))
	}

	// Initialize handlers
	subscriptionHandler := handler.NewHandler(paymentUC, configs)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize API key middleware
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	// Initialize health service
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	subscriptionHandler.RegisterRoutes(e, apiKeyMiddleware)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing PostgreSQL connection...")
	postgresClient.Close()

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
