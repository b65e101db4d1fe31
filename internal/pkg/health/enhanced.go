package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/afrikipresse/subscription-service/internal/pkg/database"
	"github.com/afrikipresse/subscription-service/internal/pkg/logger"
	"github.com/afrikipresse/subscription-service/internal/pkg/nats"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx)
}

// NATSHealthChecker checks NATS connection health
type NATSHealthChecker struct {
	client *nats.Client
}

// NewNATSHealthChecker creates a new NATS health checker
func NewNATSHealthChecker(client *nats.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

// CheckHealth checks if NATS is healthy
func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	if !n.client.IsConnected() {
		return fmt.Errorf("NATS not connected")
	}
	return nil
}

// HealthService aggregates dependency health checks
type HealthService struct {
	checkers map[string]HealthChecker
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(zapLogger *logger.ZapLogger) *HealthService {
	return &HealthService{
		checkers: make(map[string]HealthChecker),
		logger:   zapLogger,
	}
}

// AddChecker registers a named dependency checker
func (s *HealthService) AddChecker(name string, checker HealthChecker) {
	s.checkers[name] = checker
}

// CheckAll runs every registered checker and returns per-dependency results
func (s *HealthService) CheckAll(ctx context.Context) (map[string]string, bool) {
	results := make(map[string]string, len(s.checkers))
	healthy := true

	for name, checker := range s.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			results[name] = err.Error()
			healthy = false
			s.logger.Warn("Dependency health check failed",
				logger.String("dependency", name),
				logger.Err(err))
		} else {
			results[name] = "ok"
		}
	}

	return results, healthy
}

// RegisterHealthEndpoints registers health and readiness endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, service *HealthService) {
	e.GET("/ping", NewPingHandler(serviceName, version))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		results, healthy := service.CheckAll(ctx)

		status := http.StatusOK
		statusText := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			statusText = "not ready"
		}

		return c.JSON(status, map[string]interface{}{
			"status":       statusText,
			"service":      serviceName,
			"version":      version,
			"dependencies": results,
			"timestamp":    time.Now(),
		})
	})
}
