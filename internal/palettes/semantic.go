// SPDX-License-Identifier: MIT
package palettes

import (
	"math"

	"github.com/thatcatcamp/palettekit/internal/colors"
)

// semanticTarget pulls the brand hue toward a canonical hue and pins
// saturation and lightness into a band. A higher blend keeps less of the
// brand hue.
type semanticTarget struct {
	hue      float64
	blend    float64
	minSat   float64
	maxSat   float64
	minLight float64
	maxLight float64
}

var (
	successTarget = semanticTarget{hue: 120, blend: 0.8, minSat: 40, maxSat: 70, minLight: 35, maxLight: 45}
	warningTarget = semanticTarget{hue: 40, blend: 0.8, minSat: 70, maxSat: 90, minLight: 45, maxLight: 55}
	errorTarget   = semanticTarget{hue: 0, blend: 0.85, minSat: 60, maxSat: 80, minLight: 40, maxLight: 50}
	infoTarget    = semanticTarget{hue: 220, blend: 0.75, minSat: 50, maxSat: 80, minLight: 40, maxLight: 50}
)

// HueDistance is the signed shortest rotation from one hue to another, in
// (-180, 180].
func HueDistance(from, to float64) float64 {
	d := math.Mod(colors.NormalizeHue(to)-colors.NormalizeHue(from), 360)
	switch {
	case d > 180:
		d -= 360
	case d <= -180:
		d += 360
	}
	return d
}

func deriveSemantic(base colors.Color, target semanticTarget) colors.HSL {
	hsl := colors.ToHSL(base)
	return colors.HSL{
		H: colors.NormalizeHue(hsl.H + HueDistance(hsl.H, target.hue)*target.blend),
		S: colors.Clamp(hsl.S, target.minSat, target.maxSat),
		L: colors.Clamp(hsl.L, target.minLight, target.maxLight),
	}
}

// GenerateSuccess derives a green success color from base.
func GenerateSuccess(base colors.Color) colors.HSL { return deriveSemantic(base, successTarget) }

// GenerateWarning derives an amber warning color from base.
func GenerateWarning(base colors.Color) colors.HSL { return deriveSemantic(base, warningTarget) }

// GenerateError derives a red error color from base.
func GenerateError(base colors.Color) colors.HSL { return deriveSemantic(base, errorTarget) }

// GenerateInfo derives a blue info color from base.
func GenerateInfo(base colors.Color) colors.HSL { return deriveSemantic(base, infoTarget) }

// DeriveSemanticColors computes all four state colors.
func DeriveSemanticColors(base colors.Color) SemanticColors {
	return SemanticColors{
		Success: GenerateSuccess(base),
		Warning: GenerateWarning(base),
		Error:   GenerateError(base),
		Info:    GenerateInfo(base),
	}
}
