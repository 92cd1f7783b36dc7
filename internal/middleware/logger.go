package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// LoggingConfig holds configuration options for the request logger.
type LoggingConfig struct {
	Logger    logrus.FieldLogger
	SkipPaths []string
}

// DefaultLoggingConfig returns the default configuration.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Logger:    logrus.StandardLogger(),
		SkipPaths: []string{"/health", "/metrics"},
	}
}

// Logger returns a middleware that logs every request with its status and
// latency.
func Logger(config ...LoggingConfig) fiber.Handler {
	cfg := DefaultLoggingConfig()
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = true
	}

	return func(c *fiber.Ctx) error {
		if skip[c.Path()] {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = StatusOf(err)
		}

		entry := cfg.Logger.WithFields(logrus.Fields{
			"method":      c.Method(),
			"path":        c.Path(),
			"ip":          c.IP(),
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("Request failed")
		case status >= fiber.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
		return err
	}
}
