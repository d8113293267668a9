package middleware

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const requestLoggerKey = "request_logger"

// RequestLogger derives a per-request slog.Logger carrying the correlation id
// assigned by the requestid middleware and logs request completion. The
// logger lives in the request's locals only, so concurrent requests never see
// each other's correlation id. Paths on the configured skip list are not
// logged (health probes, endpoints carrying credentials).
func RequestLogger(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		log := slog.Default().With("request_id", reqID)
		c.Locals(requestLoggerKey, log)

		if cfg.SkipLogging(c.Method(), c.Path()) {
			return c.Next()
		}

		log.Info("request started", "method", c.Method(), "path", c.Path())
		start := time.Now()

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", float64(latency.Microseconds()) / 1000.0,
		}
		if user := UserFromContext(c); user != nil {
			attrs = append(attrs, "user_id", user.ID)
		}

		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			if err != nil {
				attrs = append(attrs, "error", err.Error())
			}
			log.Error("request failed", attrs...)
		default:
			log.Info("request completed", attrs...)
		}

		return err
	}
}

// LoggerFromContext returns the request-scoped logger, falling back to the
// process default when the middleware did not run.
func LoggerFromContext(c *fiber.Ctx) *slog.Logger {
	if log, ok := c.Locals(requestLoggerKey).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}
