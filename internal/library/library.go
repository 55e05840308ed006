// SPDX-License-Identifier: MIT

// Package library stores named palette configs so they can be regenerated,
// exported and shared later.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thatcatcamp/palettekit/internal/colors"
	"github.com/thatcatcamp/palettekit/internal/models"
	"github.com/thatcatcamp/palettekit/internal/palettes"
)

var (
	ErrNotFound  = errors.New("palette not found")
	ErrNameTaken = errors.New("palette name already exists")
	ErrEmptyName = errors.New("palette name is required")
)

// Options are the stored extras that are not part of palettes.Config
type Options struct {
	DarkMode bool
	Notes    string
}

// Create validates cfg and stores it under cfg.Name
func Create(db *gorm.DB, cfg palettes.Config, opts Options) (*models.SavedPalette, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid palette config: %w", err)
	}

	var existing models.SavedPalette
	result := db.Where("name = ?", name).First(&existing)
	if result.Error == nil {
		return nil, fmt.Errorf("%w: %s", ErrNameTaken, name)
	}

	saved := &models.SavedPalette{
		PublicID:              uuid.NewString(),
		Name:                  name,
		BaseHex:               colors.HexString(cfg.BaseColor),
		Mode:                  string(cfg.Mode),
		Steps:                 cfg.Steps,
		PreserveAccessibility: cfg.PreserveAccessibility,
		SemanticColors:        cfg.GenerateSemanticColors,
		DarkMode:              opts.DarkMode,
		Notes:                 opts.Notes,
	}

	if err := db.Create(saved).Error; err != nil {
		return nil, fmt.Errorf("failed to save palette: %w", err)
	}

	return saved, nil
}

// Get looks a palette up by public ID or name
func Get(db *gorm.DB, ref string) (*models.SavedPalette, error) {
	var saved models.SavedPalette
	result := db.Where("public_id = ? OR name = ?", ref, ref).First(&saved)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
		}
		return nil, fmt.Errorf("failed to load palette: %w", result.Error)
	}
	return &saved, nil
}

// List returns all saved palettes ordered by name
func List(db *gorm.DB) ([]models.SavedPalette, error) {
	var saved []models.SavedPalette
	if err := db.Order("name asc").Find(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}
	return saved, nil
}

// Delete removes a palette permanently so its name can be reused
func Delete(db *gorm.DB, ref string) error {
	saved, err := Get(db, ref)
	if err != nil {
		return err
	}
	if err := db.Unscoped().Delete(saved).Error; err != nil {
		return fmt.Errorf("failed to delete palette: %w", err)
	}
	return nil
}

// Config rebuilds the generator config of a saved palette
func Config(saved *models.SavedPalette) (palettes.Config, error) {
	base, err := colors.ParseHex(saved.BaseHex)
	if err != nil {
		return palettes.Config{}, fmt.Errorf("stored palette %s: %w", saved.Name, err)
	}
	mode, err := palettes.ParseMode(saved.Mode)
	if err != nil {
		return palettes.Config{}, fmt.Errorf("stored palette %s: %w", saved.Name, err)
	}
	return palettes.Config{
		Name:                   saved.Name,
		BaseColor:              base,
		Mode:                   mode,
		Steps:                  saved.Steps,
		PreserveAccessibility:  saved.PreserveAccessibility,
		GenerateSemanticColors: saved.SemanticColors,
	}, nil
}

// Generate regenerates a saved palette, through cache when it is not nil
func Generate(saved *models.SavedPalette, cache *palettes.Cache) (palettes.Palette, error) {
	cfg, err := Config(saved)
	if err != nil {
		return palettes.Palette{}, err
	}
	if cache != nil {
		return cache.Generate(cfg), nil
	}
	return palettes.Generate(cfg), nil
}

// Record is the portable form used by Export and Import
type Record struct {
	Name                  string `json:"name"`
	Base                  string `json:"base"`
	Mode                  string `json:"mode"`
	Steps                 int    `json:"steps"`
	PreserveAccessibility bool   `json:"preserveAccessibility"`
	SemanticColors        bool   `json:"semanticColors"`
	DarkMode              bool   `json:"darkMode,omitempty"`
	Notes                 string `json:"notes,omitempty"`
}

// Export dumps every saved palette as a JSON array
func Export(db *gorm.DB) ([]byte, error) {
	saved, err := List(db)
	if err != nil {
		return nil, err
	}

	records := make([]Record, len(saved))
	for i, s := range saved {
		records[i] = Record{
			Name:                  s.Name,
			Base:                  s.BaseHex,
			Mode:                  s.Mode,
			Steps:                 s.Steps,
			PreserveAccessibility: s.PreserveAccessibility,
			SemanticColors:        s.SemanticColors,
			DarkMode:              s.DarkMode,
			Notes:                 s.Notes,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode library: %w", err)
	}
	return data, nil
}

// ImportResult reports what Import did with each record
type ImportResult struct {
	Imported []string
	Skipped  []string // names that already exist
}

// Import stores every record whose name is not taken yet. The whole import
// is one transaction, so a bad record leaves the library unchanged.
func Import(db *gorm.DB, data []byte) (*ImportResult, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode library: %w", err)
	}

	result := &ImportResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, r := range records {
			base, err := colors.ParseHex(r.Base)
			if err != nil {
				return fmt.Errorf("record %q: %w", r.Name, err)
			}
			mode, err := palettes.ParseMode(r.Mode)
			if err != nil {
				return fmt.Errorf("record %q: %w", r.Name, err)
			}

			cfg := palettes.Config{
				Name:                   r.Name,
				BaseColor:              base,
				Mode:                   mode,
				Steps:                  r.Steps,
				PreserveAccessibility:  r.PreserveAccessibility,
				GenerateSemanticColors: r.SemanticColors,
			}
			_, err = Create(tx, cfg, Options{DarkMode: r.DarkMode, Notes: r.Notes})
			switch {
			case errors.Is(err, ErrNameTaken):
				result.Skipped = append(result.Skipped, r.Name)
			case err != nil:
				return fmt.Errorf("record %q: %w", r.Name, err)
			default:
				result.Imported = append(result.Imported, r.Name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
