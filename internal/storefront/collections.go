package storefront

// Collection is a themed marketing preset shown by the hero model viewer.
// It is unrelated to the database collection of clothing items.
type Collection struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Description   string `json:"description"`
	ClothingColor string `json:"clothingColor"`
	AccentColor   string `json:"accentColor"`
	ParticleColor string `json:"particleColor"`
	BackdropColor string `json:"backdropColor"`
	TagColor      string `json:"tagColor"`
}

var collections = []Collection{
	{
		ID:            "new-arrivals",
		Title:         "New Arrivals",
		Subtitle:      "Spring/Summer 2025",
		Description:   "Discover the latest trends in contemporary fashion",
		ClothingColor: "#c08b79",
		AccentColor:   "#d4a088",
		ParticleColor: "#c08b79",
		BackdropColor: "#c08b79",
		TagColor:      "#c08b79",
	},
	{
		ID:            "summer",
		Title:         "Summer Vibes",
		Subtitle:      "Breezy Collection",
		Description:   "Light fabrics and vibrant colors for warm days",
		ClothingColor: "#768f7d",
		AccentColor:   "#8aab93",
		ParticleColor: "#768f7d",
		BackdropColor: "#768f7d",
		TagColor:      "#768f7d",
	},
	{
		ID:            "winter",
		Title:         "Winter Elegance",
		Subtitle:      "Cozy & Refined",
		Description:   "Premium layers and textures for the cold season",
		ClothingColor: "#181d2a",
		AccentColor:   "#c08b79",
		ParticleColor: "#4a5568",
		BackdropColor: "#2d3748",
		TagColor:      "#4a5568",
	},
	{
		ID:            "streetwear",
		Title:         "Streetwear",
		Subtitle:      "Urban Edge",
		Description:   "Bold statements for the modern urbanite",
		ClothingColor: "#2d2d2d",
		AccentColor:   "#ffa249",
		ParticleColor: "#ffa249",
		BackdropColor: "#ffa249",
		TagColor:      "#ffa249",
	},
}

// Collections returns the presets in display order.
func Collections() []Collection {
	out := make([]Collection, len(collections))
	copy(out, collections)
	return out
}

// CollectionAt returns the preset at index i, wrapping out-of-range indexes.
func CollectionAt(i int) Collection {
	return collections[wrap(i)]
}

// NextCollection returns the index after i.
func NextCollection(i int) int {
	return wrap(wrap(i) + 1)
}

// PrevCollection returns the index before i.
func PrevCollection(i int) int {
	return wrap(wrap(i) - 1)
}

func wrap(i int) int {
	n := len(collections)
	return ((i % n) + n) % n
}
