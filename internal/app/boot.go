package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clothly/internal/config"
	"clothly/internal/repositories"
	"clothly/internal/services"
	"clothly/internal/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// shutdownRetry is how long Boot waits for the listener to return before
// shutting the server down again.
const shutdownRetry = 100 * time.Millisecond

// StoreOpener connects to the clothing store.
type StoreOpener func(ctx context.Context, cfg config.StoreConfig, logger logrus.FieldLogger) (repositories.ClothingRepository, error)

// Listener binds app to addr and serves until the app is shut down.
type Listener func(app *fiber.App, addr string) error

// ListenFiber serves app on addr with app.Listen.
func ListenFiber(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

// Boot connects to the store and only then starts listening. It blocks until
// ctx is cancelled or the listener fails, then shuts the server down, closes
// the store and flushes traces. When the store cannot be opened, or ctx is
// already done once it is, the port is never bound.
func Boot(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger, open StoreOpener, listen Listener) (runErr error) {
	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.WithError(err).Warn("Error flushing traces")
		}
	}()

	store, err := open(ctx, cfg.Store, logger)
	if err != nil {
		logger.WithError(err).Error("database connection error")
		return fmt.Errorf("database connection error: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"driver":     cfg.Store.Driver,
		"collection": cfg.Store.Collection,
	}).Info("Connected to database")

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.WithError(err).Error("Error closing database")
			runErr = errors.Join(runErr, err)
		}
		logger.Info("Server gracefully stopped")
	}()

	if ctx.Err() != nil {
		logger.Info("Startup cancelled before listening")
		return nil
	}

	clothing := services.NewClothingService(store, cfg.Store.Collection, nil, logger)
	app := New(Deps{
		Clothing:      clothing,
		Storefront:    services.NewStorefrontService(),
		Logger:        logger,
		HealthTimeout: cfg.Store.ConnectTimeout,
	})

	listening := make(chan struct{})
	app.Hooks().OnListen(func(fiber.ListenData) error {
		close(listening)
		return nil
	})

	serveErr := make(chan error, 1)
	go func() {
		logger.WithField("address", cfg.AppPort).Info("Server is running")
		serveErr <- listen(app, cfg.AppPort)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			logger.WithError(err).Error("Server listener failed")
			return fmt.Errorf("listen on %s: %w", cfg.AppPort, err)
		}
		return nil
	}

	// A listener that has not bound yet would ignore a shutdown.
	select {
	case <-listening:
	case err := <-serveErr:
		return err
	}

	logger.Info("Shutting down server...")
	return shutdownServer(app, cfg.ShutdownTimeout, serveErr, logger)
}

// shutdownServer shuts app down until the listener returns. fasthttp drops a
// shutdown that lands between the listen hook and Serve registering its
// listener, so a single call is not enough.
func shutdownServer(app *fiber.App, timeout time.Duration, serveErr <-chan error, logger logrus.FieldLogger) error {
	for {
		shutdownErr := app.ShutdownWithTimeout(timeout)
		if shutdownErr != nil {
			logger.WithError(shutdownErr).Error("Error during server shutdown")
		}
		select {
		case err := <-serveErr:
			if err != nil {
				return errors.Join(shutdownErr, err)
			}
			return shutdownErr
		case <-time.After(shutdownRetry):
		}
	}
}
