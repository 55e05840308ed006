// SPDX-License-Identifier: MIT
package palettes

import (
	"math"

	"github.com/thatcatcamp/palettekit/internal/colors"
)

// RepairStep is the fixed lightness correction applied to failing entries.
const RepairStep = 5.0

// Weights at or below lightRepairMax are expected to carry text on white;
// weights at or above darkRepairMin are expected to carry text on black.
const (
	lightRepairMax = 400
	darkRepairMin  = 600
)

// RepairEntry applies one fixed correction to an entry that fails AA on its
// expected background. It reports whether anything changed. The correction
// is not iterated, so an entry can still fail afterwards.
func RepairEntry(e ScaleEntry) (ScaleEntry, bool) {
	switch {
	case needsDarkening(e):
		return NewScaleEntry(e.Weight, colors.Darken(e.Color, RepairStep)), true
	case needsLightening(e):
		return NewScaleEntry(e.Weight, colors.Lighten(e.Color, RepairStep)), true
	}
	return e, false
}

// repairGap is the minimum lightness kept between a repaired entry and its neighbour.
const repairGap = 0.5

// RepairScale returns a new slice with one correction applied to every
// failing entry. Unlike RepairEntry it never moves an entry past its
// neighbour, so a strictly decreasing scale stays strictly decreasing. When
// both neighbours of a pair move towards each other they meet at the midpoint.
// Entries left failing are reported by Unrepaired.
func RepairScale(entries []ScaleEntry) []ScaleEntry {
	out := make([]ScaleEntry, len(entries))
	for i, e := range entries {
		out[i] = e
		l := colors.ToHSL(e.Color).L

		switch {
		case needsDarkening(e):
			floor := -repairGap
			if i+1 < len(entries) {
				next := entries[i+1]
				floor = colors.ToHSL(next.Color).L
				if needsLightening(next) {
					floor = (l + floor) / 2
				}
			}
			if target := math.Max(l-RepairStep, floor+repairGap); target < l {
				out[i] = NewScaleEntry(e.Weight, colors.WithLightness(e.Color, target))
			}
		case needsLightening(e):
			ceiling := 100 + repairGap
			if i > 0 {
				prev := entries[i-1]
				ceiling = colors.ToHSL(prev.Color).L
				if needsDarkening(prev) {
					ceiling = (l + ceiling) / 2
				}
			}
			if target := math.Min(l+RepairStep, ceiling-repairGap); target > l {
				out[i] = NewScaleEntry(e.Weight, colors.WithLightness(e.Color, target))
			}
		}
	}
	return out
}

func needsDarkening(e ScaleEntry) bool {
	return e.Weight <= lightRepairMax && !e.MeetsAAOnWhite
}

func needsLightening(e ScaleEntry) bool {
	return e.Weight >= darkRepairMin && !e.MeetsAAOnBlack
}

// Unrepaired lists weights that still fail their expected background.
func Unrepaired(entries []ScaleEntry) []int {
	var failing []int
	for _, e := range entries {
		if needsDarkening(e) || needsLightening(e) {
			failing = append(failing, e.Weight)
		}
	}
	return failing
}
