package themes

import (
	"github.com/thatcatcamp/palettekit/internal/colors"
	"github.com/thatcatcamp/palettekit/internal/palettes"
)

// Colors represents the UI roles picked from a generated palette
type Colors struct {
	Primary         string // Main brand color
	PrimaryContrast string // Text on top of Primary
	Secondary       string // Accent/highlight color
	Background      string // Page background
	Surface         string // Card/container background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	Success         string // Success state color
	Error           string // Error state color
	Warning         string // Warning state color
	Info            string // Info state color
}

// Fallback state colors for palettes generated without semantic colors
const (
	fallbackSuccess = "#22c55e"
	fallbackError   = "#ef4444"
	fallbackWarning = "#f59e0b"
	fallbackInfo    = "#3b82f6"
)

// GenerateColors picks UI roles from the palette scale for light or dark mode
func GenerateColors(palette palettes.Palette, darkMode bool) *Colors {
	if darkMode {
		return generateDarkColors(palette)
	}
	return generateLightColors(palette)
}

// generateLightColors uses the dark end for text and the light end for surfaces
func generateLightColors(palette palettes.Palette) *Colors {
	primary := pick(palette, 600, "#2563eb")
	c := &Colors{
		Primary:    primary,
		Secondary:  secondary(palette, 800),
		Background: "#ffffff",
		Surface:    pick(palette, 50, "#f9fafb"),
		Text:       pick(palette, 950, "#000000"),
		TextMuted:  pick(palette, 700, "#6b7280"),
		Border:     pick(palette, 200, "#e5e7eb"),
	}
	c.PrimaryContrast = colors.HexString(colors.ReadableOn(colors.MustParseHex(primary)))
	applyStates(c, palette)
	return c
}

// generateDarkColors mirrors the light roles onto the other end of the scale
func generateDarkColors(palette palettes.Palette) *Colors {
	primary := pick(palette, 400, "#f1f5f9")
	c := &Colors{
		Primary:    primary,
		Secondary:  secondary(palette, 200),
		Background: pick(palette, 950, "#0f172a"),
		Surface:    pick(palette, 900, "#1e293b"),
		Text:       pick(palette, 50, "#f1f5f9"),
		TextMuted:  pick(palette, 300, "#94a3b8"),
		Border:     pick(palette, 800, "#334155"),
	}
	c.PrimaryContrast = colors.HexString(colors.ReadableOn(colors.MustParseHex(primary)))
	applyStates(c, palette)
	return c
}

func pick(palette palettes.Palette, weight int, fallback string) string {
	if e, ok := palette.Nearest(weight); ok {
		return e.Hex
	}
	return fallback
}

// secondary prefers a harmony color and falls back to a scale weight
func secondary(palette palettes.Palette, weight int) string {
	switch {
	case palette.Complementary != nil:
		return colors.HexString(*palette.Complementary)
	case palette.Analogous != nil:
		return colors.HexString(palette.Analogous[1])
	case palette.Triadic != nil:
		return colors.HexString(palette.Triadic[0])
	}
	return pick(palette, weight, "#64748b")
}

func applyStates(c *Colors, palette palettes.Palette) {
	if palette.Semantic == nil {
		c.Success, c.Error, c.Warning, c.Info = fallbackSuccess, fallbackError, fallbackWarning, fallbackInfo
		return
	}
	c.Success = colors.HexString(palette.Semantic.Success)
	c.Error = colors.HexString(palette.Semantic.Error)
	c.Warning = colors.HexString(palette.Semantic.Warning)
	c.Info = colors.HexString(palette.Semantic.Info)
}
