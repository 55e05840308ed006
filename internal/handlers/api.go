// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thatcatcamp/palettekit/internal/colors"
	"github.com/thatcatcamp/palettekit/internal/library"
	"github.com/thatcatcamp/palettekit/internal/palettes"
	"github.com/thatcatcamp/palettekit/internal/render"
	"github.com/thatcatcamp/palettekit/internal/themes"
)

// API serves palette generation and the saved palette library over HTTP
type API struct {
	DB         *gorm.DB
	Cache      *palettes.Cache // nil disables memoization
	Defaults   palettes.Config // used for query params that are absent
	SwatchSize render.SwatchSize
}

// NewAPI returns an API with the generator defaults
func NewAPI(database *gorm.DB, cache *palettes.Cache) *API {
	return &API{
		DB:    database,
		Cache: cache,
		Defaults: palettes.Config{
			Name:                   palettes.DefaultName,
			Mode:                   palettes.ModeMonochromatic,
			Steps:                  palettes.DefaultSteps,
			PreserveAccessibility:  true,
			GenerateSemanticColors: true,
		},
	}
}

// Register mounts every route on r
func (a *API) Register(r gin.IRouter) {
	r.GET("/health", a.Health)

	api := r.Group("/api")
	api.GET("/palette", a.Palette)
	api.GET("/palette.css", a.PaletteCSS)
	api.GET("/palette/tailwind", a.PaletteTailwind)
	api.GET("/palette/swatch.png", a.PaletteSwatch)
	api.GET("/presets", a.ListPresets)
	api.GET("/presets/:preset", a.Preset)
	api.GET("/contrast", a.Contrast)
	api.GET("/harmony", a.Harmony)
	api.GET("/seeds", a.Seeds)

	api.POST("/palettes", a.SavePalette)
	api.GET("/palettes", a.ListSaved)
	api.GET("/palettes/:id", a.GetSaved)
	api.DELETE("/palettes/:id", a.DeleteSaved)
	api.GET("/palettes/:id/theme.css", a.SavedThemeCSS)
}

// Health reports liveness and, when a database is attached, its reachability
func (a *API) Health(c *gin.Context) {
	status := gin.H{"status": "ok"}
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
		status["database"] = "ok"
	}
	if a.Cache != nil {
		hits, misses := a.Cache.Stats()
		status["cache"] = gin.H{"entries": a.Cache.Len(), "hits": hits, "misses": misses}
	}
	c.JSON(http.StatusOK, status)
}

func (a *API) generate(cfg palettes.Config) palettes.Palette {
	if a.Cache != nil {
		return a.Cache.Generate(cfg)
	}
	return palettes.Generate(cfg)
}

// configFromQuery reads color, mode, steps, accessible, semantic and name,
// falling back to Defaults, and validates the result
func (a *API) configFromQuery(c *gin.Context) (palettes.Config, error) {
	cfg := a.Defaults

	input := c.Query("color")
	if input == "" {
		return cfg, palettes.ErrMissingBaseColor
	}
	base, err := themes.ResolveColor(input)
	if err != nil {
		return cfg, err
	}
	cfg.BaseColor = base

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		cfg.Name = name
	}
	if mode := c.Query("mode"); mode != "" {
		if cfg.Mode, err = palettes.ParseMode(mode); err != nil {
			return cfg, err
		}
	}
	if steps := c.Query("steps"); steps != "" {
		n, err := strconv.Atoi(steps)
		if err != nil {
			return cfg, badRequest("steps must be an integer")
		}
		cfg.Steps = n
	}
	if cfg.PreserveAccessibility, err = boolQuery(c, "accessible", cfg.PreserveAccessibility); err != nil {
		return cfg, err
	}
	if cfg.GenerateSemanticColors, err = boolQuery(c, "semantic", cfg.GenerateSemanticColors); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func boolQuery(c *gin.Context, key string, fallback bool) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, badRequest(key + " must be a boolean")
	}
	return v, nil
}

// requestError marks input problems that have no sentinel of their own
type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func badRequest(msg string) error { return &requestError{msg: msg} }

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr),
		errors.Is(err, colors.ErrInvalidColor),
		errors.Is(err, colors.ErrUnknownHarmony),
		errors.Is(err, colors.ErrInvalidHarmonySteps),
		errors.Is(err, palettes.ErrInvalidSteps),
		errors.Is(err, palettes.ErrMissingBaseColor),
		errors.Is(err, palettes.ErrUnknownMode),
		errors.Is(err, palettes.ErrUnknownPreset),
		errors.Is(err, library.ErrEmptyName):
		return http.StatusBadRequest
	case errors.Is(err, library.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, library.ErrNameTaken):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError writes {"error": ...} and records err on the context for the request logger
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
