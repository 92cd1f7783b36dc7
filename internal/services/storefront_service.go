package services

import (
	"fmt"

	"clothly/internal/storefront"
)

// StorefrontService serves the static content of the storefront pages.
type StorefrontService struct {
	theme storefront.Theme
}

// NewStorefrontService creates a new StorefrontService.
func NewStorefrontService() *StorefrontService {
	return &StorefrontService{theme: storefront.DefaultTheme()}
}

func (s *StorefrontService) NavLinks() []storefront.NavLink {
	return storefront.HomeNavLinks()
}

// ShopNavLinks returns the shop navigation with the category of path highlighted.
func (s *StorefrontService) ShopNavLinks(path string) []storefront.NavLink {
	return storefront.ShopNavLinks(storefront.CategoryFromPath(path))
}

func (s *StorefrontService) ActiveCategory(path string) storefront.ShopCategory {
	return storefront.CategoryFromPath(path).Info()
}

func (s *StorefrontService) ShopCategories() []storefront.ShopCategory {
	return storefront.ShopCategories()
}

func (s *StorefrontService) CategoryCards() []storefront.CategoryCard {
	return storefront.CategoryCards()
}

func (s *StorefrontService) Collections() []storefront.Collection {
	return storefront.Collections()
}

// CycleCollection moves from index in direction ("next" or "prev") and
// returns the new index with its preset.
func (s *StorefrontService) CycleCollection(index int, direction string) (int, storefront.Collection, error) {
	var next int
	switch direction {
	case "next", "":
		next = storefront.NextCollection(index)
	case "prev":
		next = storefront.PrevCollection(index)
	default:
		return 0, storefront.Collection{}, fmt.Errorf("unknown direction %q", direction)
	}
	return next, storefront.CollectionAt(next), nil
}

func (s *StorefrontService) GalleryImages() []string {
	return storefront.GalleryImages()
}

func (s *StorefrontService) Testimonials() []storefront.Testimonial {
	return storefront.Testimonials()
}

func (s *StorefrontService) Contact() storefront.ContactCard {
	return storefront.Contact()
}

func (s *StorefrontService) Theme() storefront.Theme {
	return s.theme
}
