// SPDX-License-Identifier: MIT

// Package palettes turns a single brand color into a full color system: a
// lightness scale tagged with WCAG contrast data, semantic state colors and
// hue harmonies.
package palettes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thatcatcamp/palettekit/internal/colors"
)

// Mode selects how the scale is built and which harmony colors are attached.
type Mode string

const (
	ModeMonochromatic Mode = "monochromatic"
	ModeAnalogous     Mode = "analogous"
	ModeComplementary Mode = "complementary"
	ModeTriadic       Mode = "triadic"
	ModeCustom        Mode = "custom"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeMonochromatic, ModeAnalogous, ModeComplementary, ModeTriadic, ModeCustom}

// DefaultSteps gives the canonical 50-950 scale.
const DefaultSteps = 11

// MaxSteps bounds the scale length. Past it weights would start repeating.
const MaxSteps = 100

// DefaultName is used when a config has no name.
const DefaultName = "primary"

var (
	ErrInvalidSteps     = errors.New("steps must be between 1 and 100")
	ErrMissingBaseColor = errors.New("base color is required")
	ErrUnknownMode      = errors.New("unknown palette mode")
)

// ParseMode is case insensitive.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Config is the input to Generate.
type Config struct {
	Name                   string
	BaseColor              colors.Color
	Mode                   Mode
	Steps                  int
	PreserveAccessibility  bool
	GenerateSemanticColors bool
}

// Validate reports configs that Generate would turn into degenerate output.
// Generate itself stays lenient and never fails.
func (c Config) Validate() error {
	if colors.Value(c.BaseColor) == nil {
		return ErrMissingBaseColor
	}
	if c.Steps <= 0 || c.Steps > MaxSteps {
		return fmt.Errorf("%w: got %d", ErrInvalidSteps, c.Steps)
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	return nil
}

// ScaleEntry is one weighted color of a scale. Build it with NewScaleEntry so
// every contrast field is derived from Color.
type ScaleEntry struct {
	Weight            int          `json:"weight"`
	Color             colors.Color `json:"-"`
	Hex               string       `json:"hex"`
	ContrastWithWhite float64      `json:"contrastWithWhite"`
	ContrastWithBlack float64      `json:"contrastWithBlack"`
	MeetsAAOnWhite    bool         `json:"meetsAAOnWhite"`
	MeetsAAOnBlack    bool         `json:"meetsAAOnBlack"`
}

// NewScaleEntry computes hex and contrast data for c.
func NewScaleEntry(weight int, c colors.Color) ScaleEntry {
	onWhite := colors.ContrastRatio(c, colors.White)
	onBlack := colors.ContrastRatio(c, colors.Black)
	return ScaleEntry{
		Weight:            weight,
		Color:             c,
		Hex:               colors.HexString(c),
		ContrastWithWhite: onWhite,
		ContrastWithBlack: onBlack,
		MeetsAAOnWhite:    onWhite >= colors.ContrastAA,
		MeetsAAOnBlack:    onBlack >= colors.ContrastAA,
	}
}

// SemanticColors are the state colors derived from the brand color.
type SemanticColors struct {
	Success colors.HSL
	Warning colors.HSL
	Error   colors.HSL
	Info    colors.HSL
}

// Palette is the result of Generate. Treat it as a value; use Clone before
// handing it to code that might modify the scale.
type Palette struct {
	Name          string
	BaseColor     colors.Color
	Mode          Mode
	Scale         []ScaleEntry
	Semantic      *SemanticColors
	Complementary *colors.HSL
	Analogous     *[2]colors.HSL
	Triadic       *[2]colors.HSL
}

// Clone returns a deep copy.
func (p Palette) Clone() Palette {
	out := p
	if p.Scale != nil {
		out.Scale = append([]ScaleEntry(nil), p.Scale...)
	}
	if p.Semantic != nil {
		s := *p.Semantic
		out.Semantic = &s
	}
	if p.Complementary != nil {
		c := *p.Complementary
		out.Complementary = &c
	}
	if p.Analogous != nil {
		a := *p.Analogous
		out.Analogous = &a
	}
	if p.Triadic != nil {
		tr := *p.Triadic
		out.Triadic = &tr
	}
	return out
}

// Entry returns the scale entry with the given weight.
func (p Palette) Entry(weight int) (ScaleEntry, bool) {
	for _, e := range p.Scale {
		if e.Weight == weight {
			return e, true
		}
	}
	return ScaleEntry{}, false
}

// Nearest returns the entry whose weight is closest to weight; ties go to
// the lighter entry. ok is false for an empty scale.
func (p Palette) Nearest(weight int) (ScaleEntry, bool) {
	if len(p.Scale) == 0 {
		return ScaleEntry{}, false
	}
	best := p.Scale[0]
	for _, e := range p.Scale[1:] {
		if abs(e.Weight-weight) < abs(best.Weight-weight) {
			best = e
		}
	}
	return best, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
