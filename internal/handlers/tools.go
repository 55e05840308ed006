// SPDX-License-Identifier: MIT
package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thatcatcamp/palettekit/internal/colors"
	"github.com/thatcatcamp/palettekit/internal/themes"
)

// Contrast reports the WCAG contrast between ?fg= and ?bg=
func (a *API) Contrast(c *gin.Context) {
	fg, err := resolveParam(c, "fg")
	if err != nil {
		respondError(c, err)
		return
	}
	bg, err := resolveParam(c, "bg")
	if err != nil {
		respondError(c, err)
		return
	}

	ratio := colors.ContrastRatio(fg, bg)
	c.JSON(http.StatusOK, gin.H{
		"foreground":          colors.HexString(fg),
		"background":          colors.HexString(bg),
		"ratio":               round(ratio, 2),
		"foregroundLuminance": round(colors.RelativeLuminance(fg), 4),
		"backgroundLuminance": round(colors.RelativeLuminance(bg), 4),
		"level":               colors.WCAGLevel(ratio),
		"aa":                  colors.MeetsAA(fg, bg, false),
		"aaLarge":             colors.MeetsAA(fg, bg, true),
		"aaa":                 colors.MeetsAAA(fg, bg, false),
		"aaaLarge":            colors.MeetsAAA(fg, bg, true),
	})
}

// Harmony returns the harmony colors of ?color= for ?kind= (default complementary)
func (a *API) Harmony(c *gin.Context) {
	base, err := resolveParam(c, "color")
	if err != nil {
		respondError(c, err)
		return
	}

	kind := colors.HarmonyKind(c.DefaultQuery("kind", string(colors.HarmonyComplementary)))
	angle := colors.DefaultHarmonyAngle
	if raw := c.Query("angle"); raw != "" {
		if angle, err = strconv.ParseFloat(raw, 64); err != nil || math.IsNaN(angle) || math.IsInf(angle, 0) {
			respondError(c, badRequest("angle must be a number"))
			return
		}
	}
	steps, err := intQuery(c, "steps", 0)
	if err != nil {
		respondError(c, err)
		return
	}

	hsl, err := colors.Harmony(kind, base, angle, steps)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, len(hsl))
	for i, h := range hsl {
		out[i] = gin.H{"hex": colors.HexString(h), "hsl": h.String()}
	}
	c.JSON(http.StatusOK, gin.H{"base": colors.HexString(base), "kind": kind, "colors": out})
}

// Seeds lists the named seed colors
func (a *API) Seeds(c *gin.Context) {
	var out []gin.H
	for _, s := range themes.ListSeeds() {
		out = append(out, gin.H{"name": s.Name, "primary": s.Primary, "secondary": s.Secondary})
	}
	c.JSON(http.StatusOK, gin.H{"seeds": out})
}

func resolveParam(c *gin.Context, key string) (colors.Color, error) {
	input := c.Query(key)
	if input == "" {
		return nil, badRequest(key + " is required")
	}
	return themes.ResolveColor(input)
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
