package handlers

import (
	"clothly/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ClothingHandler handles HTTP requests for the clothing catalog.
type ClothingHandler struct {
	service *services.ClothingService
	logger  logrus.FieldLogger
}

// NewClothingHandler creates a new ClothingHandler.
func NewClothingHandler(service *services.ClothingService, logger logrus.FieldLogger) *ClothingHandler {
	return &ClothingHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the shop routes with the Fiber app.
func (h *ClothingHandler) RegisterRoutes(router fiber.Router) {
	shopRoutes := router.Group("/shop")
	shopRoutes.Get("/men", h.HandleGetMenClothes)
}

// HandleGetMenClothes returns every item of the men's collection as a JSON
// array, empty when the collection is.
func (h *ClothingHandler) HandleGetMenClothes(c *fiber.Ctx) error {
	items, err := h.service.ListClothes(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("Error getting men's clothes")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve clothes",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}
