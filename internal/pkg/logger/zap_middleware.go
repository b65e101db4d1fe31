package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// health endpoints are probed every few seconds; logging them drowns the
// request log
var unloggedPaths = map[string]bool{
	"/ping":    true,
	"/healthz": true,
	"/ready":   true,
}

// ZapEchoMiddleware logs every HTTP request through the Zap logger and
// decorates the active New Relic transaction with request attributes.
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path

			err := next(c)

			if unloggedPaths[path] {
				return err
			}

			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			latency := time.Since(start)
			statusCode := c.Response().Status
			method := c.Request().Method
			clientIP := c.RealIP()

			userIDStr := "anonymous"
			if userID := c.Get("user_id"); userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			requestID := c.Response().Header().Get("X-Request-ID")

			txn := newrelic.FromContext(c.Request().Context())
			if txn != nil {
				txn.AddAttribute("user_id", userIDStr)
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, method, path, clientIP, userIDStr, requestID, statusCode, latency, err)

			return err
		}
	}
}
