// SPDX-License-Identifier: MIT
package palettes

import "github.com/thatcatcamp/palettekit/internal/colors"

// Generate builds a palette from cfg. It never fails: a config with no steps
// yields an empty scale, more than MaxSteps is cut to MaxSteps and a nil base
// color yields an empty palette. Call cfg.Validate first to reject those
// inputs instead.
func Generate(cfg Config) Palette {
	cfg.BaseColor = colors.Value(cfg.BaseColor)
	name := cfg.Name
	if name == "" {
		name = DefaultName
	}
	p := Palette{Name: name, BaseColor: cfg.BaseColor, Mode: cfg.Mode}
	if cfg.BaseColor == nil {
		return p
	}

	p.Scale = BuildScale(cfg.BaseColor, cfg.Mode, min(cfg.Steps, MaxSteps))
	if cfg.PreserveAccessibility {
		p.Scale = RepairScale(p.Scale)
	}

	if cfg.GenerateSemanticColors {
		s := DeriveSemanticColors(cfg.BaseColor)
		p.Semantic = &s
	}

	switch cfg.Mode {
	case ModeComplementary:
		c := colors.Complement(cfg.BaseColor)
		p.Complementary = &c
	case ModeAnalogous:
		a := colors.Analogous(cfg.BaseColor, colors.DefaultHarmonyAngle)
		p.Analogous = &[2]colors.HSL{a[0], a[2]}
	case ModeTriadic:
		tr := colors.Triadic(cfg.BaseColor)
		p.Triadic = &[2]colors.HSL{tr[1], tr[2]}
	}

	return p
}
