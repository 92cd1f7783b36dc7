package app

import (
	"time"

	"clothly/internal/handlers"
	"clothly/internal/metrics"
	"clothly/internal/middleware"
	"clothly/internal/services"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Deps are the services the HTTP layer is built on.
type Deps struct {
	Clothing      *services.ClothingService
	Storefront    *services.StorefrontService
	Logger        logrus.FieldLogger
	HealthTimeout time.Duration
}

// New builds the Fiber app with middleware and every route registered.
// Without a clothing service the shop routes are left out and /health
// reports the database as unconfigured.
func New(deps Deps) *fiber.App {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if deps.Storefront == nil {
		deps.Storefront = services.NewStorefrontService()
	}

	app := fiber.New(fiber.Config{
		AppName:               "clothly",
		ErrorHandler:          middleware.ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(middleware.LoggingConfig{
		Logger:    logger,
		SkipPaths: []string{"/health", "/metrics"},
	}))
	app.Use(middleware.Metrics())

	metrics.Register()
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// a nil *ClothingService must not reach the health handler as a typed-nil Pinger
	var store handlers.Pinger
	if deps.Clothing != nil {
		store = deps.Clothing
		handlers.NewClothingHandler(deps.Clothing, logger).RegisterRoutes(app)
	} else {
		logger.Warn("No clothing service configured, /shop routes disabled")
	}
	handlers.NewHealthHandler(store, deps.HealthTimeout).RegisterRoutes(app)
	handlers.NewStorefrontHandler(deps.Storefront).RegisterRoutes(app)

	return app
}
