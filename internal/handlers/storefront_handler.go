package handlers

import (
	"strconv"

	"clothly/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StorefrontHandler serves the static storefront content.
type StorefrontHandler struct {
	service *services.StorefrontService
}

// NewStorefrontHandler creates a new StorefrontHandler.
func NewStorefrontHandler(service *services.StorefrontService) *StorefrontHandler {
	return &StorefrontHandler{service: service}
}

// RegisterRoutes registers the storefront routes with the Fiber app.
func (h *StorefrontHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/storefront")
	routes.Get("/nav", h.HandleNav)
	routes.Get("/shop-nav", h.HandleShopNav)
	routes.Get("/active-category", h.HandleActiveCategory)
	routes.Get("/categories", h.HandleCategoryCards)
	routes.Get("/shop-categories", h.HandleShopCategories)
	routes.Get("/collections", h.HandleCollections)
	routes.Get("/collections/cycle", h.HandleCycleCollection)
	routes.Get("/gallery", h.HandleGallery)
	routes.Get("/testimonials", h.HandleTestimonials)
	routes.Get("/contact", h.HandleContact)
	routes.Get("/theme", h.HandleTheme)
}

func (h *StorefrontHandler) HandleNav(c *fiber.Ctx) error {
	return c.JSON(h.service.NavLinks())
}

// HandleShopNav returns the shop navigation with the link for ?path= marked active.
func (h *StorefrontHandler) HandleShopNav(c *fiber.Ctx) error {
	return c.JSON(h.service.ShopNavLinks(c.Query("path")))
}

// HandleActiveCategory resolves ?path= to its shop category, men by default.
func (h *StorefrontHandler) HandleActiveCategory(c *fiber.Ctx) error {
	return c.JSON(h.service.ActiveCategory(c.Query("path")))
}

func (h *StorefrontHandler) HandleCategoryCards(c *fiber.Ctx) error {
	return c.JSON(h.service.CategoryCards())
}

func (h *StorefrontHandler) HandleShopCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.ShopCategories())
}

func (h *StorefrontHandler) HandleCollections(c *fiber.Ctx) error {
	return c.JSON(h.service.Collections())
}

// HandleCycleCollection moves through the collection presets.
// Query: index (default 0), direction next|prev (default next).
func (h *StorefrontHandler) HandleCycleCollection(c *fiber.Ctx) error {
	index := 0
	if raw := c.Query("index"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid index",
				"error":   err.Error(),
			})
		}
		index = n
	}

	next, collection, err := h.service.CycleCollection(index, c.Query("direction"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid direction",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"index":      next,
		"collection": collection,
	})
}

func (h *StorefrontHandler) HandleGallery(c *fiber.Ctx) error {
	return c.JSON(h.service.GalleryImages())
}

func (h *StorefrontHandler) HandleTestimonials(c *fiber.Ctx) error {
	return c.JSON(h.service.Testimonials())
}

func (h *StorefrontHandler) HandleContact(c *fiber.Ctx) error {
	return c.JSON(h.service.Contact())
}

func (h *StorefrontHandler) HandleTheme(c *fiber.Ctx) error {
	return c.JSON(h.service.Theme())
}
