// SPDX-License-Identifier: MIT
package themes

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/thatcatcamp/palettekit/internal/colors"
	"github.com/thatcatcamp/palettekit/internal/palettes"
)

// Export formats accepted by Export
const (
	FormatJSON     = "json"
	FormatCSS      = "css"
	FormatTailwind = "tailwind"
)

// ExportFormats lists the supported formats
var ExportFormats = []string{FormatJSON, FormatCSS, FormatTailwind}

var tokenInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// TokenName turns a palette name into a CSS/JS safe token
func TokenName(name string) string {
	token := strings.Trim(tokenInvalidChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if token == "" {
		return palettes.DefaultName
	}
	return token
}

// PaletteJSON is the flat JSON projection of a palette
type PaletteJSON struct {
	Name          string            `json:"name"`
	Base          string            `json:"base"`
	Mode          string            `json:"mode,omitempty"`
	Scale         []ScaleEntryJSON  `json:"scale"`
	Semantic      map[string]string `json:"semantic,omitempty"`
	Complementary string            `json:"complementary,omitempty"`
	Analogous     []string          `json:"analogous,omitempty"`
	Triadic       []string          `json:"triadic,omitempty"`
}

// ScaleEntryJSON is one scale entry in the JSON projection
type ScaleEntryJSON struct {
	Weight        int               `json:"weight"`
	Hex           string            `json:"hex"`
	Contrast      ContrastJSON      `json:"contrast"`
	Accessibility AccessibilityJSON `json:"accessibility"`
}

// ContrastJSON holds contrast ratios against white and black
type ContrastJSON struct {
	White float64 `json:"white"`
	Black float64 `json:"black"`
}

// AccessibilityJSON holds the AA flags of an entry
type AccessibilityJSON struct {
	AAOnWhite bool `json:"aaOnWhite"`
	AAOnBlack bool `json:"aaOnBlack"`
}

// Project builds the JSON projection, rounding ratios to two decimals
func Project(p palettes.Palette) PaletteJSON {
	out := PaletteJSON{
		Name:  p.Name,
		Mode:  string(p.Mode),
		Scale: make([]ScaleEntryJSON, len(p.Scale)),
	}
	if p.BaseColor != nil {
		out.Base = colors.HexString(p.BaseColor)
	}

	for i, e := range p.Scale {
		out.Scale[i] = ScaleEntryJSON{
			Weight: e.Weight,
			Hex:    e.Hex,
			Contrast: ContrastJSON{
				White: round2(e.ContrastWithWhite),
				Black: round2(e.ContrastWithBlack),
			},
			Accessibility: AccessibilityJSON{
				AAOnWhite: e.MeetsAAOnWhite,
				AAOnBlack: e.MeetsAAOnBlack,
			},
		}
	}

	if p.Semantic != nil {
		out.Semantic = semanticHex(p.Semantic)
	}
	if p.Complementary != nil {
		out.Complementary = colors.HexString(*p.Complementary)
	}
	if p.Analogous != nil {
		out.Analogous = []string{colors.HexString(p.Analogous[0]), colors.HexString(p.Analogous[1])}
	}
	if p.Triadic != nil {
		out.Triadic = []string{colors.HexString(p.Triadic[0]), colors.HexString(p.Triadic[1])}
	}
	return out
}

// JSON renders the projection as indented JSON
func JSON(p palettes.Palette) (string, error) {
	data, err := json.MarshalIndent(Project(p), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode palette: %w", err)
	}
	return string(data), nil
}

// CSSVariables renders the scale and semantic colors as CSS custom properties
func CSSVariables(p palettes.Palette) string {
	token := TokenName(p.Name)
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, e := range p.Scale {
		fmt.Fprintf(&b, "  --%s-%d: %s;\n", token, e.Weight, e.Hex)
	}
	if p.Semantic != nil {
		for _, role := range semanticRoles {
			fmt.Fprintf(&b, "  --%s-%s: %s;\n", token, role, semanticHex(p.Semantic)[role])
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// TailwindConfig renders a tailwind.config.js fragment extending the theme colors
func TailwindConfig(p palettes.Palette) string {
	var b strings.Builder
	b.WriteString("module.exports = {\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	b.WriteString("      colors: {\n")
	fmt.Fprintf(&b, "        '%s': {\n", TokenName(p.Name))
	for _, e := range p.Scale {
		fmt.Fprintf(&b, "          %d: '%s',\n", e.Weight, e.Hex)
	}
	b.WriteString("        },\n")
	if p.Semantic != nil {
		hexes := semanticHex(p.Semantic)
		for _, role := range semanticRoles {
			fmt.Fprintf(&b, "        %s: '%s',\n", role, hexes[role])
		}
	}
	b.WriteString("      },\n")
	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("};\n")
	return b.String()
}

// Export renders p in the named format
func Export(p palettes.Palette, format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return JSON(p)
	case FormatCSS:
		return CSSVariables(p), nil
	case FormatTailwind:
		return TailwindConfig(p), nil
	}
	return "", fmt.Errorf("unsupported export format: %s", format)
}

var semanticRoles = []string{"success", "warning", "error", "info"}

func semanticHex(s *palettes.SemanticColors) map[string]string {
	return map[string]string{
		"success": colors.HexString(s.Success),
		"warning": colors.HexString(s.Warning),
		"error":   colors.HexString(s.Error),
		"info":    colors.HexString(s.Info),
	}
}

func round2(x float64) float64 {
	return float64(int64(x*100+0.5)) / 100
}
