package storefront

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Shade is a colour with its hover and light variants.
type Shade struct {
	Default string `json:"DEFAULT"`
	Hover   string `json:"hover"`
	Light   string `json:"light"`
	Main    string `json:"main,omitempty"`
}

// BrandColors are the three brand shades.
type BrandColors struct {
	Primary   Shade `json:"primary"`
	Secondary Shade `json:"secondary"`
	Accent    Shade `json:"accent"`
}

// Theme is the colour, spacing and radius table of the storefront.
type Theme struct {
	Brand        BrandColors       `json:"brand"`
	Background   map[string]string `json:"background"`
	Text         map[string]string `json:"text"`
	Border       map[string]string `json:"border"`
	Status       map[string]string `json:"status"`
	Chart        map[string]string `json:"chart"`
	Shadow       map[string]string `json:"shadow"`
	Gradient     map[string]string `json:"gradient"`
	Spacing      map[string]string `json:"spacing"`
	BorderRadius map[string]string `json:"borderRadius"`
}

// DefaultTheme returns the storefront theme.
func DefaultTheme() Theme {
	return Theme{
		Brand: BrandColors{
			Primary:   Shade{Default: "#c08b79", Hover: "#b07a69", Light: "#d49a8a", Main: "#02343F"},
			Secondary: Shade{Default: "#768f7d", Hover: "#6a8070", Light: "#8a9f8f"},
			Accent:    Shade{Default: "#181d2a", Hover: "#151a26", Light: "#1e2532"},
		},
		Background: map[string]string{
			"primary":   "#e5ebd3",
			"secondary": "#ffa249",
			"card":      "#1c1a2e",
			"overlay":   "rgba(0, 0, 0, 0.5)",
		},
		Text: map[string]string{
			"primary":   "#ffffff",
			"secondary": "rgba(255, 255, 255, 0.7)",
			"muted":     "rgba(255, 255, 255, 0.5)",
			"disabled":  "rgba(255, 255, 255, 0.3)",
			"inverse":   "#191121",
		},
		Border: map[string]string{
			"DEFAULT": "rgba(255, 255, 255, 0.1)",
			"light":   "rgba(255, 255, 255, 0.2)",
			"dark":    "rgba(255, 255, 255, 0.05)",
		},
		Status: map[string]string{
			"success": "#22c55e",
			"warning": "#f59e0b",
			"error":   "#ef4444",
			"info":    "#3b82f6",
		},
		Chart: map[string]string{
			"1": "oklch(0.646 0.222 41.116)",
			"2": "oklch(0.6 0.118 184.704)",
			"3": "oklch(0.398 0.07 227.392)",
			"4": "oklch(0.828 0.189 84.429)",
			"5": "oklch(0.769 0.188 70.08)",
		},
		Shadow: map[string]string{
			"sm":      "rgba(0, 0, 0, 0.1)",
			"DEFAULT": "rgba(0, 0, 0, 0.25)",
			"lg":      "rgba(0, 0, 0, 0.35)",
			"glow":    "rgba(192, 139, 121, 0.4)",
		},
		Gradient: map[string]string{
			"primary":   "linear-gradient(135deg, #c08b79 0%, #181d2a 100%)",
			"secondary": "linear-gradient(135deg, #768f7d 0%, #181d2a 100%)",
			"subtle":    "linear-gradient(135deg, rgba(192, 139, 121, 0.1) 0%, rgba(24, 29, 42, 0.1) 100%)",
			"hero":      "linear-gradient(135deg, #191121 0%, #2a2540 100%)",
		},
		Spacing: map[string]string{
			"xs": "0.25rem", "sm": "0.5rem", "md": "1rem", "lg": "1.5rem",
			"xl": "2rem", "2xl": "3rem", "3xl": "4rem",
		},
		BorderRadius: map[string]string{
			"sm":   "calc(0.625rem - 4px)",
			"md":   "calc(0.625rem - 2px)",
			"lg":   "0.625rem",
			"xl":   "calc(0.625rem + 4px)",
			"2xl":  "calc(0.625rem + 8px)",
			"full": "9999px",
		},
	}
}

// Contrast is the text tone readable on a background.
type Contrast string

const (
	ContrastLight Contrast = "light"
	ContrastDark  Contrast = "dark"
)

// WithOpacity turns a hex colour into an rgba() expression. Other colour
// notations are returned unchanged.
func WithOpacity(color string, opacity float64) string {
	if !strings.HasPrefix(color, "#") {
		return color
	}
	c, err := colorful.Hex(color)
	if err != nil {
		return color
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(opacity, 'f', -1, 64))
}

// ContrastColor picks dark text for light backgrounds and light text for
// dark ones, using perceived luminance.
func ContrastColor(hex string) (Contrast, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	if luminance > 0.5 {
		return ContrastDark, nil
	}
	return ContrastLight, nil
}
