// SPDX-License-Identifier: MIT
package colors

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultHarmonyAngle is the spread used by analogous and split-complementary
// harmonies when the caller passes zero.
const DefaultHarmonyAngle = 30.0

// ErrUnknownHarmony is returned by Harmony for kinds outside HarmonyKinds.
var ErrUnknownHarmony = errors.New("unknown harmony")

// HarmonyKind names a hue relationship.
type HarmonyKind string

const (
	HarmonyAnalogous          HarmonyKind = "analogous"
	HarmonyComplementary      HarmonyKind = "complementary"
	HarmonyTriadic            HarmonyKind = "triadic"
	HarmonyTetradic           HarmonyKind = "tetradic"
	HarmonySplitComplementary HarmonyKind = "split-complementary"
	HarmonyMonochromatic      HarmonyKind = "monochromatic"
)

// HarmonyKinds lists every supported kind in display order.
var HarmonyKinds = []HarmonyKind{
	HarmonyAnalogous,
	HarmonyComplementary,
	HarmonyTriadic,
	HarmonyTetradic,
	HarmonySplitComplementary,
	HarmonyMonochromatic,
}

// Analogous returns base rotated by -angle, 0 and +angle.
func Analogous(c Color, angle float64) []HSL {
	if angle == 0 {
		angle = DefaultHarmonyAngle
	}
	return rotations(c, -angle, 0, angle)
}

// Triadic returns base rotated by 0, 120 and 240.
func Triadic(c Color) []HSL {
	return rotations(c, 0, 120, 240)
}

// Tetradic returns base rotated by 0, 90, 180 and 270.
func Tetradic(c Color) []HSL {
	return rotations(c, 0, 90, 180, 270)
}

// SplitComplementary returns base and the two neighbours of its complement.
func SplitComplementary(c Color, angle float64) []HSL {
	if angle == 0 {
		angle = DefaultHarmonyAngle
	}
	return rotations(c, 0, 180-angle, 180+angle)
}

// MaxHarmonySteps bounds the monochromatic harmony.
const MaxHarmonySteps = 100

// ErrInvalidHarmonySteps is returned by Harmony for an oversized monochromatic request.
var ErrInvalidHarmonySteps = errors.New("harmony steps must be between 1 and 100")

// Monochromatic returns steps colors sharing hue and saturation with
// lightness evenly spaced by 100/(steps+1); 0 and 100 are never produced.
// steps is capped at MaxHarmonySteps.
func Monochromatic(c Color, steps int) []HSL {
	if steps <= 0 {
		return nil
	}
	if steps > MaxHarmonySteps {
		steps = MaxHarmonySteps
	}
	base := ToHSL(c)
	gap := 100 / float64(steps+1)
	out := make([]HSL, steps)
	for i := range out {
		out[i] = HSL{H: base.H, S: base.S, L: gap * float64(i+1)}
	}
	return out
}

// Harmony dispatches by kind. angle is used by analogous and
// split-complementary; steps by monochromatic.
func Harmony(kind HarmonyKind, c Color, angle float64, steps int) ([]HSL, error) {
	switch HarmonyKind(strings.ToLower(string(kind))) {
	case HarmonyAnalogous:
		return Analogous(c, angle), nil
	case HarmonyComplementary:
		return []HSL{ToHSL(c), Complement(c)}, nil
	case HarmonyTriadic:
		return Triadic(c), nil
	case HarmonyTetradic:
		return Tetradic(c), nil
	case HarmonySplitComplementary:
		return SplitComplementary(c, angle), nil
	case HarmonyMonochromatic:
		if steps <= 0 {
			steps = 5
		}
		if steps > MaxHarmonySteps {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidHarmonySteps, steps)
		}
		return Monochromatic(c, steps), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownHarmony, kind)
}

func rotations(c Color, offsets ...float64) []HSL {
	out := make([]HSL, len(offsets))
	for i, o := range offsets {
		out[i] = Rotate(c, o)
	}
	return out
}
