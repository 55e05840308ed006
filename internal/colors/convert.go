// SPDX-License-Identifier: MIT
package colors

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ToRGB converts any color to RGB, the pivot representation.
func ToRGB(c Color) RGB {
	switch v := Value(c).(type) {
	case RGB:
		return v.Normalized()
	case HSL:
		return hslToRGB(v.Normalized())
	case HSV:
		return hsvToRGB(v.Normalized())
	case Hex:
		return v.RGB()
	case LAB:
		return labToRGB(v)
	default:
		panic(fmt.Sprintf("colors: unknown color type %T", c))
	}
}

// ToHSL converts any color to HSL.
func ToHSL(c Color) HSL {
	switch v := Value(c).(type) {
	case HSL:
		return v.Normalized()
	case RGB, HSV, Hex, LAB:
		return rgbToHSL(ToRGB(v))
	default:
		panic(fmt.Sprintf("colors: unknown color type %T", c))
	}
}

// ToHSV converts any color to HSV.
func ToHSV(c Color) HSV {
	switch v := Value(c).(type) {
	case HSV:
		return v.Normalized()
	case RGB, HSL, Hex, LAB:
		return rgbToHSV(ToRGB(v))
	default:
		panic(fmt.Sprintf("colors: unknown color type %T", c))
	}
}

// ToHex converts any color to hex, rounding each channel to the nearest byte.
func ToHex(c Color) Hex {
	switch v := Value(c).(type) {
	case Hex:
		return v
	case RGB, HSL, HSV, LAB:
		rgb := ToRGB(v)
		return Hex{r: channel(rgb.R), g: channel(rgb.G), b: channel(rgb.B)}
	default:
		panic(fmt.Sprintf("colors: unknown color type %T", c))
	}
}

// ToLAB converts any color to CIE L*a*b* (D65).
func ToLAB(c Color) LAB {
	switch v := Value(c).(type) {
	case LAB:
		return v
	case RGB, HSL, HSV, Hex:
		return rgbToLAB(ToRGB(v))
	default:
		panic(fmt.Sprintf("colors: unknown color type %T", c))
	}
}

// HexString is shorthand for ToHex(c).String().
func HexString(c Color) string {
	return ToHex(c).String()
}

func rgbToHSL(c RGB) HSL {
	r, g, b := c.R/255, c.G/255, c.B/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	delta := max - min
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l > 0.5 {
		s = delta / (2 - max - min)
	} else {
		s = delta / (max + min)
	}

	return HSL{H: hueFromRGB(r, g, b, max, delta), S: s * 100, L: l * 100}.Normalized()
}

func hslToRGB(c HSL) RGB {
	h, s, l := c.H/360, c.S/100, c.L/100
	if s == 0 {
		return RGB{R: l * 255, G: l * 255, B: l * 255}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return NewRGB(
		hueToChannel(p, q, h+1.0/3)*255,
		hueToChannel(p, q, h)*255,
		hueToChannel(p, q, h-1.0/3)*255,
	)
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func rgbToHSV(c RGB) HSV {
	r, g, b := c.R/255, c.G/255, c.B/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	if delta == 0 {
		return HSV{H: 0, S: 0, V: max * 100}
	}

	var s float64
	if max > 0 {
		s = delta / max
	}
	return HSV{H: hueFromRGB(r, g, b, max, delta), S: s * 100, V: max * 100}.Normalized()
}

func hsvToRGB(c HSV) RGB {
	s, v := c.S/100, c.V/100
	if s == 0 {
		return RGB{R: v * 255, G: v * 255, B: v * 255}
	}

	h := c.H / 60
	sector := math.Floor(h)
	f := h - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(sector) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return NewRGB(r*255, g*255, b*255)
}

// hueFromRGB picks the hue sector from the max channel. The sector value is in
// [0, 6) before scaling to degrees.
func hueFromRGB(r, g, b, max, delta float64) float64 {
	var sector float64
	switch max {
	case r:
		sector = (g - b) / delta
		if g < b {
			sector += 6
		}
	case g:
		sector = (b-r)/delta + 2
	default:
		sector = (r-g)/delta + 4
	}
	return NormalizeHue(sector * 60)
}

func rgbToLAB(c RGB) LAB {
	l, a, b := colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Lab()
	return LAB{L: l * 100, A: a * 100, B: b * 100}
}

// labToRGB clamps out-of-gamut results into sRGB.
func labToRGB(c LAB) RGB {
	cc := colorful.Lab(c.L/100, c.A/100, c.B/100).Clamped()
	return NewRGB(cc.R*255, cc.G*255, cc.B*255)
}
