package storefront

import "strings"

// NavLink is a single navigation entry.
type NavLink struct {
	Href   string `json:"href"`
	Label  string `json:"label"`
	Active bool   `json:"active,omitempty"`
}

var homeNavLinks = []NavLink{
	{Href: "/", Label: "Home"},
	{Href: "/shop", Label: "Shop"},
	{Href: "/categories", Label: "Categories"},
	{Href: "/about", Label: "About"},
	{Href: "/contact", Label: "Contact"},
}

// HomeNavLinks returns the links of the main navigation bar.
func HomeNavLinks() []NavLink {
	out := make([]NavLink, len(homeNavLinks))
	copy(out, homeNavLinks)
	return out
}

// ShopNavLinks returns one link per category with active highlighted.
func ShopNavLinks(active Category) []NavLink {
	out := make([]NavLink, 0, len(Categories))
	for _, c := range Categories {
		info := c.Info()
		out = append(out, NavLink{
			Href:   "/shop/" + strings.ToLower(info.Label),
			Label:  info.Label,
			Active: c == active,
		})
	}
	return out
}

// CategoryCard is a category tile of the hero section.
type CategoryCard struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	ItemCount    int    `json:"itemCount"`
	Href         string `json:"href"`
	GradientFrom string `json:"gradientFrom"`
	GradientTo   string `json:"gradientTo"`
	AccentColor  string `json:"accentColor"`
}

var categoryCards = []CategoryCard{
	{Title: "Men", Description: "Tailored fits & modern essentials", Icon: "shirt", ItemCount: 240, Href: "/shop/men", GradientFrom: "#181d2a", GradientTo: "#2a2540", AccentColor: "#c08b79"},
	{Title: "Women", Description: "Elegant styles & trending pieces", Icon: "heart", ItemCount: 310, Href: "/shop/women", GradientFrom: "#c08b79", GradientTo: "#a06b59", AccentColor: "#ffd4c4"},
	{Title: "Children", Description: "Playful designs & comfy wear", Icon: "baby", ItemCount: 180, Href: "/shop/kids", GradientFrom: "#768f7d", GradientTo: "#5a7360", AccentColor: "#a8d4b0"},
	{Title: "Couples", Description: "Matching outfits & duo collections", Icon: "users", ItemCount: 95, Href: "/shop/couples", GradientFrom: "#ffa249", GradientTo: "#d4832a", AccentColor: "#ffe0b2"},
}

// CategoryCards returns the hero category tiles.
func CategoryCards() []CategoryCard {
	out := make([]CategoryCard, len(categoryCards))
	copy(out, categoryCards)
	return out
}

var galleryImages = []string{
	"https://images.pexels.com/photos/1704120/pexels-photo-1704120.jpeg?auto=compress&cs=tinysrgb&w=1200",
	"https://images.pexels.com/photos/1103970/pexels-photo-1103970.jpeg?auto=compress&cs=tinysrgb&w=1200",
	"https://images.pexels.com/photos/2387873/pexels-photo-2387873.jpeg?auto=compress&cs=tinysrgb&w=1200",
	"https://images.pexels.com/photos/912110/pexels-photo-912110.jpeg?auto=compress&cs=tinysrgb&w=1200",
	"https://images.pexels.com/photos/325185/pexels-photo-325185.jpeg?auto=compress&cs=tinysrgb&w=1200",
	"https://images.pexels.com/photos/114979/pexels-photo-114979.jpeg?auto=compress&cs=tinysrgb&w=1200",
	"https://images.pexels.com/photos/1108099/pexels-photo-1108099.jpeg?auto=compress&cs=tinysrgb&w=1200",
	"https://images.pexels.com/photos/145939/pexels-photo-145939.jpeg?auto=compress&cs=tinysrgb&w=1200",
	"https://images.pexels.com/photos/698808/pexels-photo-698808.jpeg?auto=compress&cs=tinysrgb&w=1200",
	"https://images.pexels.com/photos/2449540/pexels-photo-2449540.jpeg?auto=compress&cs=tinysrgb&w=1200",
}

// GalleryImages returns the image URLs shown in the image ring and carousels.
func GalleryImages() []string {
	out := make([]string, len(galleryImages))
	copy(out, galleryImages)
	return out
}

// Testimonial is a customer quote.
type Testimonial struct {
	Quote       string `json:"quote"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Src         string `json:"src"`
}

var testimonials = []Testimonial{
	{
		Quote:       "This product exceeded my expectations! The quality is outstanding and the customer service was excellent.",
		Name:        "Sarah Johnson",
		Designation: "Fashion Enthusiast",
		Src:         "/images/download.png",
	},
	{
		Quote:       "I've been a loyal customer for years. The attention to detail and craftsmanship is unmatched.",
		Name:        "Michael Chen",
		Designation: "Style Blogger",
		Src:         "/images/download (1).png",
	},
	{
		Quote:       "Absolutely love the collection! Every piece is unique and the fit is perfect.",
		Name:        "Emma Williams",
		Designation: "Designer",
		Src:         "/images/download (2).png",
	},
}

// Testimonials returns the customer quotes of the about section.
func Testimonials() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// ContactEntry is one line of the contact card.
type ContactEntry struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ContactCard is the content of the contact section. The form it frames has
// no submission endpoint.
type ContactCard struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Entries     []ContactEntry `json:"entries"`
}

// Contact returns the contact section content.
func Contact() ContactCard {
	return ContactCard{
		Title:       "Get In Touch",
		Description: "Have questions about our products or services? We'd love to hear from you. Fill out the form and we'll get back to you within 1 business day.",
		Entries: []ContactEntry{
			{Icon: "mail", Label: "Email", Value: "support@clothly.com"},
			{Icon: "phone", Label: "Phone", Value: "+1 (555) 123-4567"},
			{Icon: "map-pin", Label: "Address", Value: "123 Fashion Street, NY 10001"},
		},
	}
}
