// SPDX-License-Identifier: MIT
package colors

import "math"

// WCAG 2.x contrast thresholds.
const (
	// ContrastAA is required for normal body text.
	ContrastAA = 4.5
	// ContrastLargeAA is required for large text (18pt, or 14pt bold).
	ContrastLargeAA = 3.0
	// ContrastAAA is required for normal text at level AAA.
	ContrastAAA = 7.0
	// ContrastLargeAAA is required for large text at level AAA.
	ContrastLargeAAA = 4.5
)

// RelativeLuminance is the WCAG relative luminance in [0, 1].
func RelativeLuminance(c Color) float64 {
	rgb := ToRGB(c)
	return 0.2126*linearize(rgb.R) + 0.7152*linearize(rgb.G) + 0.0722*linearize(rgb.B)
}

func linearize(v float64) float64 {
	s := v / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// ContrastRatio is the WCAG contrast ratio, from 1 to 21. It is symmetric.
func ContrastRatio(a, b Color) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// MeetsAA reports whether fg on bg passes WCAG AA.
func MeetsAA(fg, bg Color, largeText bool) bool {
	if largeText {
		return ContrastRatio(fg, bg) >= ContrastLargeAA
	}
	return ContrastRatio(fg, bg) >= ContrastAA
}

// MeetsAAA reports whether fg on bg passes WCAG AAA.
func MeetsAAA(fg, bg Color, largeText bool) bool {
	if largeText {
		return ContrastRatio(fg, bg) >= ContrastLargeAAA
	}
	return ContrastRatio(fg, bg) >= ContrastAAA
}

// WCAGLevel names the best level a contrast ratio reaches for normal text,
// falling back to "AA Large" and then "Fail".
func WCAGLevel(ratio float64) string {
	switch {
	case ratio >= ContrastAAA:
		return "AAA"
	case ratio >= ContrastAA:
		return "AA"
	case ratio >= ContrastLargeAA:
		return "AA Large"
	}
	return "Fail"
}

// IsLight reports relative luminance above 0.5.
func IsLight(c Color) bool {
	return RelativeLuminance(c) > 0.5
}

// PerceivedBrightness uses the HSP model, sqrt(.299r² + .587g² + .114b²),
// and returns a value in [0, 255]. It is not relative luminance.
func PerceivedBrightness(c Color) float64 {
	rgb := ToRGB(c)
	return math.Sqrt(0.299*rgb.R*rgb.R + 0.587*rgb.G*rgb.G + 0.114*rgb.B*rgb.B)
}

// ReadableOn returns white or black, whichever contrasts more with bg.
func ReadableOn(bg Color) RGB {
	if ContrastRatio(White, bg) >= ContrastRatio(Black, bg) {
		return White
	}
	return Black
}
