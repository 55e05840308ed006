// SPDX-License-Identifier: MIT

// Package colors implements the color model used by palettekit: a closed set of
// color representations (RGB, HSL, HSV, hex and CIE L*a*b*) with conversions,
// manipulation, WCAG analysis and hue harmonies.
package colors

import (
	"fmt"
	"image/color"
	"math"
)

// Color is one of RGB, HSL, HSV, Hex or LAB. The set is closed: only types in
// this package implement it, so every conversion can switch over all variants.
type Color interface {
	fmt.Stringer
	isColor()
}

// RGB is an sRGB color with channels in [0, 255].
type RGB struct {
	R, G, B float64
}

// HSL is hue in [0, 360), saturation and lightness in [0, 100].
type HSL struct {
	H, S, L float64
}

// HSV is hue in [0, 360), saturation and value in [0, 100].
type HSV struct {
	H, S, V float64
}

// Hex is a validated 24-bit color. The zero value is #000000.
// Build one with ParseHex or ToHex; there is no way to hold malformed hex.
type Hex struct {
	r, g, b uint8
}

// LAB is a CIE L*a*b* color relative to the D65 white point.
// L is in [0, 100]; A and B are roughly in [-128, 127].
type LAB struct {
	L, A, B float64
}

func (RGB) isColor() {}
func (HSL) isColor() {}
func (HSV) isColor() {}
func (Hex) isColor() {}
func (LAB) isColor() {}

// Value returns the value variant behind a pointer variant, so *RGB behaves
// like RGB everywhere. A nil pointer yields nil.
func Value(c Color) Color {
	switch v := c.(type) {
	case *RGB:
		if v != nil {
			return *v
		}
	case *HSL:
		if v != nil {
			return *v
		}
	case *HSV:
		if v != nil {
			return *v
		}
	case *Hex:
		if v != nil {
			return *v
		}
	case *LAB:
		if v != nil {
			return *v
		}
	default:
		return c
	}
	return nil
}

// Named reference colors used by contrast checks.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// NewRGB returns an RGB color with every channel clamped to [0, 255].
func NewRGB(r, g, b float64) RGB {
	return RGB{R: Clamp(r, 0, 255), G: Clamp(g, 0, 255), B: Clamp(b, 0, 255)}
}

// NewHSL returns a normalized HSL color.
func NewHSL(h, s, l float64) HSL {
	return HSL{H: NormalizeHue(h), S: Clamp(s, 0, 100), L: Clamp(l, 0, 100)}
}

// NewHSV returns a normalized HSV color.
func NewHSV(h, s, v float64) HSV {
	return HSV{H: NormalizeHue(h), S: Clamp(s, 0, 100), V: Clamp(v, 0, 100)}
}

// Normalized returns c with channels clamped.
func (c RGB) Normalized() RGB { return NewRGB(c.R, c.G, c.B) }

// Normalized returns c with hue wrapped and S/L clamped.
func (c HSL) Normalized() HSL { return NewHSL(c.H, c.S, c.L) }

// Normalized returns c with hue wrapped and S/V clamped.
func (c HSV) Normalized() HSV { return NewHSV(c.H, c.S, c.V) }

func (c RGB) String() string {
	n := c.Normalized()
	return fmt.Sprintf("rgb(%d, %d, %d)", channel(n.R), channel(n.G), channel(n.B))
}

func (c HSL) String() string {
	n := c.Normalized()
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", n.H, n.S, n.L)
}

func (c HSV) String() string {
	n := c.Normalized()
	return fmt.Sprintf("hsv(%.0f, %.0f%%, %.0f%%)", n.H, n.S, n.V)
}

// String returns the lowercase #rrggbb form.
func (c Hex) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// NRGBA converts to an opaque image/color value.
func (c Hex) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: 0xff}
}

// Bare returns the hex digits without the leading '#'.
func (c Hex) Bare() string {
	return c.String()[1:]
}

func (c LAB) String() string {
	return fmt.Sprintf("lab(%.2f %.2f %.2f)", c.L, c.A, c.B)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// NormalizeHue wraps h into [0, 360) using true modulo, so negative input
// never yields a negative hue.
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

// channel rounds a [0,255] float to the nearest byte.
func channel(v float64) uint8 {
	return uint8(math.Round(Clamp(v, 0, 255)))
}
