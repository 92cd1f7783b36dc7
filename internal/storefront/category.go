// Package storefront holds the static content of the clothing storefront:
// shop categories, navigation, marketing collections, testimonials, contact
// details and the colour theme.
package storefront

import "strings"

// Category is a shop category, used both as a URL segment and as the
// navigation highlighting key.
type Category string

const (
	Men     Category = "men"
	Women   Category = "women"
	Kids    Category = "kids"
	Couples Category = "couples"
)

// DefaultCategory is used whenever a path does not name a known category.
const DefaultCategory = Men

// Categories lists the shop categories in navigation order.
var Categories = []Category{Men, Women, Kids, Couples}

// ShopCategory is the display configuration of a category page.
type ShopCategory struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Label    string   `json:"label"`
}

var shopCategories = map[Category]ShopCategory{
	Men:     {Category: Men, Title: "Men Collection", Label: "Men"},
	Women:   {Category: Women, Title: "Women Collection", Label: "Women"},
	Kids:    {Category: Kids, Title: "Kids Collection", Label: "Kids"},
	Couples: {Category: Couples, Title: "Couples Collection", Label: "Couples"},
}

// ParseCategory returns the category named s.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	_, ok := shopCategories[c]
	return c, ok
}

// CategoryFromPath resolves the active category from the last segment of a
// shop path such as "/shop/kids". Unknown segments resolve to DefaultCategory,
// and so does the empty segment after a trailing slash.
func CategoryFromPath(path string) Category {
	segment := path[strings.LastIndex(path, "/")+1:]
	if c, ok := ParseCategory(segment); ok {
		return c
	}
	return DefaultCategory
}

// Info returns the display configuration of c.
func (c Category) Info() ShopCategory {
	return shopCategories[c]
}

// ShopCategories returns the display configuration of every category.
func ShopCategories() []ShopCategory {
	out := make([]ShopCategory, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, shopCategories[c])
	}
	return out
}
