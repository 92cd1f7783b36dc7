package middleware

import (
	"time"

	"clothly/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request counts and latency per matched route.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = StatusOf(err)
		}

		// unmatched paths share one label to keep cardinality bounded
		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "/" && r.Path != "" {
			route = r.Path
		}
		metrics.ObserveHTTP(route, c.Method(), status, time.Since(start))
		return err
	}
}
