// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thatcatcamp/palettekit/internal/palettes"
	"github.com/thatcatcamp/palettekit/internal/render"
	"github.com/thatcatcamp/palettekit/internal/themes"
)

// Palette returns the JSON projection of a generated palette
func (a *API) Palette(c *gin.Context) {
	cfg, err := a.configFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, themes.Project(a.generate(cfg)))
}

// PaletteCSS returns the palette as CSS custom properties
func (a *API) PaletteCSS(c *gin.Context) {
	cfg, err := a.configFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(themes.CSSVariables(a.generate(cfg))))
}

// PaletteTailwind returns a tailwind.config.js fragment
func (a *API) PaletteTailwind(c *gin.Context) {
	cfg, err := a.configFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", []byte(themes.TailwindConfig(a.generate(cfg))))
}

// PaletteSwatch returns a PNG swatch strip; width and height override SwatchSize
func (a *API) PaletteSwatch(c *gin.Context) {
	cfg, err := a.configFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	size := a.SwatchSize
	if size.Width, err = intQuery(c, "width", size.Width); err != nil {
		respondError(c, err)
		return
	}
	if size.Height, err = intQuery(c, "height", size.Height); err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := render.WriteSwatchPNG(&buf, a.generate(cfg), size); err != nil {
		respondError(c, badRequest(err.Error()))
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// ListPresets returns the preset names with their settings
func (a *API) ListPresets(c *gin.Context) {
	var out []gin.H
	for _, name := range palettes.PresetNames() {
		cfg, _ := palettes.PresetConfig(name, nil)
		out = append(out, gin.H{
			"name":       name,
			"mode":       cfg.Mode,
			"steps":      cfg.Steps,
			"accessible": cfg.PreserveAccessibility,
			"semantic":   cfg.GenerateSemanticColors,
		})
	}
	c.JSON(http.StatusOK, gin.H{"presets": out})
}

// Preset generates a named preset for ?color=
func (a *API) Preset(c *gin.Context) {
	input := c.Query("color")
	if input == "" {
		respondError(c, palettes.ErrMissingBaseColor)
		return
	}
	base, err := themes.ResolveColor(input)
	if err != nil {
		respondError(c, err)
		return
	}

	cfg, err := palettes.PresetConfig(c.Param("preset"), base)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, themes.Project(a.generate(cfg)))
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, badRequest(key + " must be an integer")
	}
	return n, nil
}
