package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler renders errors returned by handlers as {"message","error"}
// JSON. Fiber errors keep their status code, anything else becomes a 500.
func ErrorHandler(logger logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := StatusOf(err)
		message := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			message = fe.Message
		}

		entry := logger.WithFields(logrus.Fields{
			"status_code": status,
			"path":        c.Path(),
			"method":      c.Method(),
		}).WithError(err)
		if status >= fiber.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Debug("Request error")
		}

		return c.Status(status).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	}
}

// StatusOf returns the HTTP status an error will be rendered with.
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
