package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service and database health.
type HealthHandler struct {
	store   Pinger
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler. Each check is bounded by timeout.
// A nil store is reported as unconfigured.
func NewHealthHandler(store Pinger, timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthHandler{store: store, timeout: timeout}
}

func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

// HandleHealth answers 200 when the database responds and 503 otherwise.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	status, database, code := "healthy", "connected", fiber.StatusOK
	switch {
	case h.store == nil:
		status, database, code = "unhealthy", "unconfigured", fiber.StatusServiceUnavailable
	case h.store.Ping(ctx) != nil:
		status, database, code = "unhealthy", "unreachable", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"time":     time.Now().Format(time.RFC3339),
		"database": database,
	})
}
