// SPDX-License-Identifier: MIT
package palettes

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/palettekit/internal/colors"
)

var brand = colors.MustParseHex("#3b82f6")

func lightness(e ScaleEntry) float64 {
	return colors.ToHSL(e.Color).L
}

func TestGenerateCanonicalScale(t *testing.T) {
	p := Generate(Config{
		BaseColor:             brand,
		Mode:                  ModeMonochromatic,
		Steps:                 11,
		PreserveAccessibility: true,
	})

	weights := make([]int, len(p.Scale))
	for i, e := range p.Scale {
		weights[i] = e.Weight
	}
	assert.Equal(t, []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}, weights)

	e100, ok := p.Entry(100)
	require.True(t, ok)
	e900, ok := p.Entry(900)
	require.True(t, ok)
	assert.Less(t, lightness(e900), lightness(e100))
	assert.Equal(t, DefaultName, p.Name)
}

func TestGeneratedScaleIsMonotonic(t *testing.T) {
	bases := []colors.Color{
		brand,
		colors.White,
		colors.Black,
		colors.MustParseHex("#fde047"),
		colors.HSL{H: 300, S: 10, L: 97},
		colors.HSV{H: 10, S: 90, V: 20},
	}
	for _, base := range bases {
		for _, mode := range []Mode{ModeMonochromatic, ModeCustom, ModeAnalogous, ModeTriadic} {
			for _, steps := range []int{2, 5, 11} {
				p := Generate(Config{BaseColor: base, Mode: mode, Steps: steps})
				for i := 1; i < len(p.Scale); i++ {
					assert.Less(t, lightness(p.Scale[i]), lightness(p.Scale[i-1]),
						"%v %s steps=%d at %d", base, mode, steps, i)
				}
			}
		}
	}

	p := Corporate(brand)
	for i := 1; i < len(p.Scale); i++ {
		assert.Less(t, lightness(p.Scale[i]), lightness(p.Scale[i-1]), "corporate at %d", i)
	}
}

func TestRepairedPresetsStayMonotonic(t *testing.T) {
	bases := []colors.Color{
		brand,
		colors.White,
		colors.Black,
		colors.MustParseHex("#fafafa"),
		colors.MustParseHex("#111827"),
		colors.MustParseHex("#fde047"),
	}
	for _, base := range bases {
		for _, name := range PresetNames() {
			p, err := Preset(name, base)
			require.NoError(t, err)
			for i := 1; i < len(p.Scale); i++ {
				assert.Less(t, lightness(p.Scale[i]), lightness(p.Scale[i-1]),
					"%s(%s) weight %d vs %d", name, colors.HexString(base), p.Scale[i].Weight, p.Scale[i-1].Weight)
			}
		}
	}
}

func TestRepairedScaleReportsBlockedWeights(t *testing.T) {
	p := Corporate(colors.MustParseHex("#fafafa"))
	e400, ok := p.Entry(400)
	require.True(t, ok)
	e500, ok := p.Entry(500)
	require.True(t, ok)
	assert.Greater(t, lightness(e400), lightness(e500))
	assert.Contains(t, Unrepaired(p.Scale), 400)
}

func TestScaleEntryAAConsistency(t *testing.T) {
	for _, name := range PresetNames() {
		for _, hex := range []string{"#3b82f6", "#f59e0b", "#111827", "#fafafa"} {
			p, err := Preset(name, colors.MustParseHex(hex))
			require.NoError(t, err)
			for _, e := range p.Scale {
				onWhite := colors.ContrastRatio(e.Color, colors.White)
				onBlack := colors.ContrastRatio(e.Color, colors.Black)
				assert.Equal(t, onWhite >= 4.5, e.MeetsAAOnWhite)
				assert.Equal(t, onBlack >= 4.5, e.MeetsAAOnBlack)
				assert.Equal(t, onWhite, e.ContrastWithWhite)
				assert.Equal(t, onBlack, e.ContrastWithBlack)
			}
		}
	}
}

func TestGenerateDegenerateConfig(t *testing.T) {
	p := Generate(Config{BaseColor: brand, Mode: ModeMonochromatic, Steps: 0, GenerateSemanticColors: true})
	assert.Empty(t, p.Scale)
	assert.NotNil(t, p.Semantic)

	p = Generate(Config{BaseColor: brand, Mode: ModeMonochromatic, Steps: 1_000_000})
	assert.Len(t, p.Scale, MaxSteps)

	p = Generate(Config{Steps: 11})
	assert.Empty(t, p.Scale)
	assert.Nil(t, p.Semantic)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{BaseColor: brand, Mode: ModeCustom, Steps: 3}.Validate())
	assert.True(t, errors.Is(Config{BaseColor: brand, Mode: ModeCustom}.Validate(), ErrInvalidSteps))
	assert.NoError(t, Config{BaseColor: brand, Mode: ModeCustom, Steps: MaxSteps}.Validate())
	assert.True(t, errors.Is(Config{BaseColor: brand, Mode: ModeCustom, Steps: MaxSteps + 1}.Validate(), ErrInvalidSteps))
	assert.True(t, errors.Is(Config{Mode: ModeCustom, Steps: 3}.Validate(), ErrMissingBaseColor))
	assert.True(t, errors.Is(Config{BaseColor: brand, Mode: "plaid", Steps: 3}.Validate(), ErrUnknownMode))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Complementary ")
	require.NoError(t, err)
	assert.Equal(t, ModeComplementary, m)

	_, err = ParseMode("sepia")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestHarmonyColorsByMode(t *testing.T) {
	baseH := colors.ToHSL(brand).H

	p := Generate(Config{BaseColor: brand, Mode: ModeComplementary, Steps: 11})
	require.NotNil(t, p.Complementary)
	assert.InDelta(t, math.Mod(baseH+180, 360), p.Complementary.H, 1e-9)
	assert.Nil(t, p.Analogous)

	p = Generate(Config{BaseColor: brand, Mode: ModeAnalogous, Steps: 11})
	require.NotNil(t, p.Analogous)
	assert.InDelta(t, baseH-30, p.Analogous[0].H, 1e-9)
	assert.InDelta(t, baseH+30, p.Analogous[1].H, 1e-9)

	p = Generate(Config{BaseColor: brand, Mode: ModeTriadic, Steps: 11})
	require.NotNil(t, p.Triadic)
	assert.InDelta(t, math.Mod(baseH+120, 360), p.Triadic[0].H, 1e-9)
	assert.InDelta(t, math.Mod(baseH+240, 360), p.Triadic[1].H, 1e-9)

	p = Generate(Config{BaseColor: brand, Mode: ModeMonochromatic, Steps: 11})
	assert.Nil(t, p.Complementary)
	assert.Nil(t, p.Analogous)
	assert.Nil(t, p.Triadic)
}

func TestPresets(t *testing.T) {
	minimal := Minimal(colors.MustParseHex("#e11d48"))
	assert.Len(t, minimal.Scale, 5)
	assert.Nil(t, minimal.Semantic)
	assert.Equal(t, "minimal", minimal.Name)

	corporate := Corporate(brand)
	assert.Len(t, corporate.Scale, 11)
	assert.NotNil(t, corporate.Semantic)
	assert.Equal(t, ModeMonochromatic, corporate.Mode)

	assert.NotNil(t, Vibrant(brand).Triadic)
	assert.NotNil(t, Balanced(brand).Analogous)

	_, err := Preset("loud", brand)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestCloneIsIndependent(t *testing.T) {
	p := Corporate(brand)
	c := p.Clone()
	c.Scale[0].Hex = "#000000"
	c.Semantic.Success.H = 1
	assert.NotEqual(t, "#000000", p.Scale[0].Hex)
	assert.NotEqual(t, 1.0, p.Semantic.Success.H)
}

func TestNearest(t *testing.T) {
	p := Minimal(brand)
	e, ok := p.Nearest(500)
	require.True(t, ok)
	assert.Equal(t, 500, e.Weight)

	e, _ = p.Nearest(600)
	assert.Equal(t, 500, e.Weight)

	_, ok = Palette{}.Nearest(500)
	assert.False(t, ok)
}

func TestCacheDerefsPointerColors(t *testing.T) {
	cache := NewCache(0)
	hex := colors.MustParseHex("#3b82f6")
	cfg := Config{BaseColor: hex, Mode: ModeMonochromatic, Steps: 5}
	ptr := cfg
	ptr.BaseColor = &hex

	assert.Equal(t, cache.Generate(cfg), cache.Generate(ptr))
	assert.Equal(t, 1, cache.Len())

	var nilHex *colors.Hex
	assert.True(t, errors.Is(Config{BaseColor: nilHex, Mode: ModeMonochromatic, Steps: 5}.Validate(), ErrMissingBaseColor))
}

func TestCache(t *testing.T) {
	cache := NewCache(0)
	cfg, err := PresetConfig("corporate", brand)
	require.NoError(t, err)

	first := cache.Generate(cfg)
	second := cache.Generate(cfg)
	assert.Equal(t, Generate(cfg), first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())

	hits, misses := cache.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)

	first.Scale[0].Hex = "#000000"
	assert.NotEqual(t, "#000000", cache.Generate(cfg).Scale[0].Hex)

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, Generate(cfg), cache.Generate(cfg))
}

func TestCacheBound(t *testing.T) {
	cache := NewCache(2)
	for _, hex := range []string{"#111111", "#222222", "#333333"} {
		cache.Generate(Config{BaseColor: colors.MustParseHex(hex), Steps: 3})
	}
	assert.LessOrEqual(t, cache.Len(), 2)
}

func TestCacheConcurrent(t *testing.T) {
	cache := NewCache(0)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg := Config{BaseColor: colors.HSL{H: float64(i % 4 * 90), S: 50, L: 50}, Mode: ModeCustom, Steps: 11}
			p := cache.Generate(cfg)
			assert.Len(t, p.Scale, 11)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 4, cache.Len())
}
