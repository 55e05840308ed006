// SPDX-License-Identifier: MIT
package palettes

import (
	"math"

	"github.com/thatcatcamp/palettekit/internal/colors"
)

// CanonicalWeights is the 50-950 design token scale.
var CanonicalWeights = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

const (
	lightestLightness = 95.0

	// The curve anchor is kept inside these bounds so the scale is strictly
	// decreasing even for near-white or near-black brand colors.
	minAnchorLightness = 10.0
	maxAnchorLightness = 90.0

	richHueDrift      = 5.0
	complementaryMix  = 0.1
	complementaryPush = 45.0
)

// GenerateWeights returns n ascending weights. Eleven steps yield the
// canonical scale; other counts interpolate linearly between 50 and 950.
// A single step is the 500 midpoint.
func GenerateWeights(n int) []int {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []int{500}
	case n == len(CanonicalWeights):
		return append([]int(nil), CanonicalWeights...)
	}

	weights := make([]int, n)
	for i := range weights {
		weights[i] = int(math.Round(50 + 900*float64(i)/float64(n-1)))
	}
	weights[0] = 50
	weights[n-1] = 950
	return weights
}

// position maps step i of n onto [0, 1]. A lone step sits at the midpoint.
func position(i, n int) float64 {
	if n <= 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

// LightnessCurve returns the lightness of step i of n. The light half eases
// quadratically from 95 down to the anchor; the dark half falls from the
// anchor to 0 with exponent 1.5, so dark steps are compressed and light steps
// spread out.
func LightnessCurve(baseLightness float64, i, n int) float64 {
	anchor := colors.Clamp(baseLightness, minAnchorLightness, maxAnchorLightness)
	t := position(i, n)
	if t < 0.5 {
		tt := 2 * t
		return lightestLightness - (lightestLightness-anchor)*tt*tt
	}
	tt := 2 * (t - 0.5)
	return anchor - anchor*math.Pow(tt, 1.5)
}

// MonochromaticScale keeps hue and saturation and walks lightness along the curve.
func MonochromaticScale(base colors.Color, steps int) []colors.HSL {
	if steps <= 0 {
		return nil
	}
	hsl := colors.ToHSL(base)
	out := make([]colors.HSL, steps)
	for i := range out {
		out[i] = colors.HSL{H: hsl.H, S: hsl.S, L: LightnessCurve(hsl.L, i, steps)}
	}
	return out
}

// RichMonochromaticScale follows the lightness curve and adds a hue drift
// (warm on light steps, cool on dark ones, up to 5 degrees) and a saturation
// falloff at both extremes.
func RichMonochromaticScale(base colors.Color, steps int) []colors.HSL {
	if steps <= 0 {
		return nil
	}
	hsl := colors.ToHSL(base)
	out := make([]colors.HSL, steps)
	for i := range out {
		t := position(i, steps)
		out[i] = colors.HSL{
			H: colors.NormalizeHue(hsl.H + (t-0.5)*2*richHueDrift),
			S: colors.Clamp(hsl.S*saturationFalloff(t), 0, 100),
			L: LightnessCurve(hsl.L, i, steps),
		}
	}
	return out
}

// saturationFalloff is 0.3 at t=0 rising to 1 at t=0.2, flat through the
// middle, then falls from 1 at t=0.8 to 0 at t=1.
func saturationFalloff(t float64) float64 {
	switch {
	case t < 0.2:
		return 0.3 + 0.7*(t/0.2)
	case t > 0.8:
		return 1 - (t-0.8)/0.2
	}
	return 1
}

// ComplementaryScale drifts toward the complement (mix ratio 0 to 0.1) and
// then pushes early steps lighter and late steps darker by up to 45 points.
func ComplementaryScale(base colors.Color, steps int) []colors.HSL {
	if steps <= 0 {
		return nil
	}
	complement := colors.Complement(base)
	out := make([]colors.HSL, steps)
	for i := range out {
		t := position(i, steps)
		mixed := colors.Mix(base, complement, complementaryMix*t)
		switch {
		case t < 0.5:
			out[i] = colors.Lighten(mixed, complementaryPush*(1-2*t))
		case t > 0.5:
			out[i] = colors.Darken(mixed, complementaryPush*(2*t-1))
		default:
			out[i] = colors.ToHSL(mixed)
		}
	}
	return out
}

// GenerateScale picks the scale strategy for mode.
func GenerateScale(base colors.Color, mode Mode, steps int) []colors.HSL {
	switch mode {
	case ModeComplementary:
		return ComplementaryScale(base, steps)
	case ModeAnalogous, ModeTriadic, ModeCustom:
		return RichMonochromaticScale(base, steps)
	default:
		return MonochromaticScale(base, steps)
	}
}

// BuildScale pairs generated colors with weights and computes contrast data.
func BuildScale(base colors.Color, mode Mode, steps int) []ScaleEntry {
	shades := GenerateScale(base, mode, steps)
	weights := GenerateWeights(steps)
	entries := make([]ScaleEntry, len(shades))
	for i, c := range shades {
		entries[i] = NewScaleEntry(weights[i], c)
	}
	return entries
}
