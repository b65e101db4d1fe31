package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/afrikipresse/subscription-service/internal/pkg/logger"
	"github.com/afrikipresse/subscription-service/internal/utils"
)

// PanicRecoveryMiddleware recovers from panics in handlers, logs the stack
// trace and reports the panic to New Relic when a transaction is present
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())

	requestID := c.Response().Header().Get(RequestIDHeader)
	if requestID == "" {
		requestID = c.Request().Header.Get(RequestIDHeader)
	}

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(fmt.Errorf("panic recovered: %v", r))
	}

	zapLogger.WithFields(map[string]interface{}{
		"panic_value": r,
		"panic_type":  fmt.Sprintf("%T", r),
		"stack_trace": stackTrace,
		"method":      c.Request().Method,
		"path":        c.Request().URL.Path,
		"client_ip":   c.RealIP(),
		"request_id":  requestID,
		"component":   "panic_recovery",
	}).Error("Panic recovered")

	if !c.Response().Committed {
		_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
