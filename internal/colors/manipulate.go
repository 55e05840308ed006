// SPDX-License-Identifier: MIT
package colors

// Lighten adds amount percentage points of lightness, clamped to [0, 100].
func Lighten(c Color, amount float64) HSL {
	h := ToHSL(c)
	h.L = Clamp(h.L+amount, 0, 100)
	return h
}

// Darken subtracts amount percentage points of lightness, clamped to [0, 100].
func Darken(c Color, amount float64) HSL {
	return Lighten(c, -amount)
}

// Saturate adds amount percentage points of saturation, clamped to [0, 100].
func Saturate(c Color, amount float64) HSL {
	h := ToHSL(c)
	h.S = Clamp(h.S+amount, 0, 100)
	return h
}

// Desaturate subtracts amount percentage points of saturation.
func Desaturate(c Color, amount float64) HSL {
	return Saturate(c, -amount)
}

// Rotate turns the hue by degrees; negative values rotate counter-clockwise.
func Rotate(c Color, degrees float64) HSL {
	h := ToHSL(c)
	h.H = NormalizeHue(h.H + degrees)
	return h
}

// Complement is the color on the opposite side of the wheel.
func Complement(c Color) HSL {
	return Rotate(c, 180)
}

// Mix interpolates each RGB channel from c1 (ratio 0) to c2 (ratio 1).
// Ratios outside [0, 1] are clamped.
func Mix(c1, c2 Color, ratio float64) RGB {
	ratio = Clamp(ratio, 0, 1)
	a, b := ToRGB(c1), ToRGB(c2)
	return NewRGB(
		a.R+(b.R-a.R)*ratio,
		a.G+(b.G-a.G)*ratio,
		a.B+(b.B-a.B)*ratio,
	)
}

// Invert returns 255 minus each channel.
func Invert(c Color) RGB {
	rgb := ToRGB(c)
	return RGB{R: 255 - rgb.R, G: 255 - rgb.G, B: 255 - rgb.B}
}

// Grayscale drops all saturation and keeps hue and lightness.
func Grayscale(c Color) HSL {
	h := ToHSL(c)
	h.S = 0
	return h
}

// WithLightness returns c with lightness replaced.
func WithLightness(c Color, l float64) HSL {
	h := ToHSL(c)
	h.L = Clamp(l, 0, 100)
	return h
}
