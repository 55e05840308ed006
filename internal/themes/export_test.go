// SPDX-License-Identifier: MIT
package themes

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/palettekit/internal/colors"
	"github.com/thatcatcamp/palettekit/internal/palettes"
)

func TestTokenName(t *testing.T) {
	assert.Equal(t, "brand-blue", TokenName("Brand Blue"))
	assert.Equal(t, "a-b", TokenName("--a__b--"))
	assert.Equal(t, palettes.DefaultName, TokenName("!!!"))
}

func TestJSONProjection(t *testing.T) {
	p := palettes.Corporate(colors.MustParseHex("#3b82f6"))
	out, err := JSON(p)
	require.NoError(t, err)

	var decoded PaletteJSON
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "corporate", decoded.Name)
	assert.Equal(t, "#3b82f6", decoded.Base)
	require.Len(t, decoded.Scale, 11)
	assert.Equal(t, 50, decoded.Scale[0].Weight)
	assert.Equal(t, p.Scale[0].Hex, decoded.Scale[0].Hex)
	assert.InDelta(t, p.Scale[10].ContrastWithWhite, decoded.Scale[10].Contrast.White, 0.01)
	assert.Equal(t, p.Scale[10].MeetsAAOnWhite, decoded.Scale[10].Accessibility.AAOnWhite)
	assert.Len(t, decoded.Semantic, 4)
	assert.Contains(t, out, `"aaOnWhite"`)
}

func TestJSONOmitsAbsentParts(t *testing.T) {
	p := palettes.Minimal(colors.MustParseHex("#3b82f6"))
	proj := Project(p)
	assert.Nil(t, proj.Semantic)
	assert.Empty(t, proj.Complementary)
	assert.Nil(t, proj.Triadic)
}

func TestJSONHarmonies(t *testing.T) {
	p := palettes.Vibrant(colors.MustParseHex("#3b82f6"))
	proj := Project(p)
	assert.Len(t, proj.Triadic, 2)
	assert.Nil(t, proj.Analogous)
}

func TestCSSVariables(t *testing.T) {
	p := palettes.Corporate(colors.MustParseHex("#3b82f6"))
	p.Name = "Brand"
	css := CSSVariables(p)

	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.True(t, strings.HasSuffix(css, "}\n"))
	for _, e := range p.Scale {
		assert.Contains(t, css, "--brand-"+strconv.Itoa(e.Weight)+": "+e.Hex+";")
	}
	assert.Contains(t, css, "--brand-success:")
	assert.Contains(t, css, "--brand-info:")
}

func TestTailwindConfig(t *testing.T) {
	p := palettes.Balanced(colors.MustParseHex("#e11d48"))
	out := TailwindConfig(p)

	assert.True(t, strings.HasPrefix(out, "module.exports = {"))
	assert.Contains(t, out, "'balanced': {")
	assert.Contains(t, out, "500: '"+mustEntry(t, p, 500).Hex+"',")
	assert.Contains(t, out, "warning: '")
	assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"))
}

func TestExportFormats(t *testing.T) {
	p := palettes.Corporate(colors.MustParseHex("#3b82f6"))
	for _, f := range ExportFormats {
		out, err := Export(p, f)
		require.NoError(t, err, f)
		assert.NotEmpty(t, out, f)
	}
	_, err := Export(p, "scss")
	assert.Error(t, err)
}

func mustEntry(t *testing.T, p palettes.Palette, weight int) palettes.ScaleEntry {
	t.Helper()
	e, ok := p.Entry(weight)
	require.True(t, ok)
	return e
}
