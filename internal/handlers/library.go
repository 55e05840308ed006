// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thatcatcamp/palettekit/internal/library"
	"github.com/thatcatcamp/palettekit/internal/models"
	"github.com/thatcatcamp/palettekit/internal/palettes"
	"github.com/thatcatcamp/palettekit/internal/themes"
)

// SaveRequest is the body of POST /api/palettes. Absent fields use Defaults.
type SaveRequest struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	Mode       string `json:"mode"`
	Steps      *int   `json:"steps"`
	Accessible *bool  `json:"accessible"`
	Semantic   *bool  `json:"semantic"`
	DarkMode   bool   `json:"darkMode"`
	Notes      string `json:"notes"`
}

type savedResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Base       string    `json:"base"`
	Mode       string    `json:"mode"`
	Steps      int       `json:"steps"`
	Accessible bool      `json:"accessible"`
	Semantic   bool      `json:"semantic"`
	DarkMode   bool      `json:"darkMode"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toSavedResponse(s *models.SavedPalette) savedResponse {
	return savedResponse{
		ID:         s.PublicID,
		Name:       s.Name,
		Base:       s.BaseHex,
		Mode:       s.Mode,
		Steps:      s.Steps,
		Accessible: s.PreserveAccessibility,
		Semantic:   s.SemanticColors,
		DarkMode:   s.DarkMode,
		Notes:      s.Notes,
		CreatedAt:  s.CreatedAt,
	}
}

func (a *API) configFromRequest(req SaveRequest) (palettes.Config, error) {
	cfg := a.Defaults
	cfg.Name = req.Name

	if req.Color == "" {
		return cfg, palettes.ErrMissingBaseColor
	}
	base, err := themes.ResolveColor(req.Color)
	if err != nil {
		return cfg, err
	}
	cfg.BaseColor = base

	if req.Mode != "" {
		if cfg.Mode, err = palettes.ParseMode(req.Mode); err != nil {
			return cfg, err
		}
	}
	if req.Steps != nil {
		cfg.Steps = *req.Steps
	}
	if req.Accessible != nil {
		cfg.PreserveAccessibility = *req.Accessible
	}
	if req.Semantic != nil {
		cfg.GenerateSemanticColors = *req.Semantic
	}
	return cfg, nil
}

// SavePalette stores a palette config in the library
func (a *API) SavePalette(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest("invalid JSON body"))
		return
	}

	cfg, err := a.configFromRequest(req)
	if err != nil {
		respondError(c, err)
		return
	}

	saved, err := library.Create(a.DB, cfg, library.Options{DarkMode: req.DarkMode, Notes: req.Notes})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"palette": toSavedResponse(saved),
		"preview": themes.Project(a.generate(cfg)),
	})
}

// ListSaved lists the library
func (a *API) ListSaved(c *gin.Context) {
	saved, err := library.List(a.DB)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]savedResponse, len(saved))
	for i := range saved {
		out[i] = toSavedResponse(&saved[i])
	}
	c.JSON(http.StatusOK, gin.H{"palettes": out})
}

// GetSaved returns a saved palette, regenerated
func (a *API) GetSaved(c *gin.Context) {
	saved, err := library.Get(a.DB, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	p, err := library.Generate(saved, a.Cache)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"palette": toSavedResponse(saved), "generated": themes.Project(p)})
}

// DeleteSaved removes a palette from the library
func (a *API) DeleteSaved(c *gin.Context) {
	if err := library.Delete(a.DB, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SavedThemeCSS renders the site theme of a saved palette; ?dark= overrides its preference
func (a *API) SavedThemeCSS(c *gin.Context) {
	saved, err := library.Get(a.DB, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	dark, err := boolQuery(c, "dark", saved.DarkMode)
	if err != nil {
		respondError(c, err)
		return
	}

	p, err := library.Generate(saved, a.Cache)
	if err != nil {
		respondError(c, err)
		return
	}
	css := themes.GenerateCSS(themes.GenerateColors(p, dark))
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}
