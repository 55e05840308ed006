// SPDX-License-Identifier: MIT
package palettes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thatcatcamp/palettekit/internal/colors"
)

// ErrUnknownPreset is returned for names outside PresetNames.
var ErrUnknownPreset = errors.New("unknown preset")

// presetConfigs fixes mode, steps and flags for each named preset.
var presetConfigs = map[string]Config{
	"corporate": {Mode: ModeMonochromatic, Steps: DefaultSteps, PreserveAccessibility: true, GenerateSemanticColors: true},
	"vibrant":   {Mode: ModeTriadic, Steps: DefaultSteps, PreserveAccessibility: true, GenerateSemanticColors: true},
	"balanced":  {Mode: ModeAnalogous, Steps: DefaultSteps, PreserveAccessibility: true, GenerateSemanticColors: true},
	"minimal":   {Mode: ModeMonochromatic, Steps: 5, PreserveAccessibility: true, GenerateSemanticColors: false},
}

// PresetNames returns the presets in display order.
func PresetNames() []string {
	return []string{"corporate", "vibrant", "balanced", "minimal"}
}

// PresetConfig returns the config of a named preset for base.
func PresetConfig(name string, base colors.Color) (Config, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	cfg, ok := presetConfigs[key]
	if !ok {
		return Config{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	cfg.Name = key
	cfg.BaseColor = base
	return cfg, nil
}

// Preset generates a named preset.
func Preset(name string, base colors.Color) (Palette, error) {
	cfg, err := PresetConfig(name, base)
	if err != nil {
		return Palette{}, err
	}
	return Generate(cfg), nil
}

func mustPreset(name string, base colors.Color) Palette {
	p, err := Preset(name, base)
	if err != nil {
		panic(err)
	}
	return p
}

// Corporate is monochromatic, 11 steps, accessibility repair and semantic colors.
func Corporate(base colors.Color) Palette { return mustPreset("corporate", base) }

// Vibrant is triadic, 11 steps, accessibility repair and semantic colors.
func Vibrant(base colors.Color) Palette { return mustPreset("vibrant", base) }

// Balanced is analogous, 11 steps, accessibility repair and semantic colors.
func Balanced(base colors.Color) Palette { return mustPreset("balanced", base) }

// Minimal is monochromatic, 5 steps, accessibility repair, no semantic colors.
func Minimal(base colors.Color) Palette { return mustPreset("minimal", base) }
