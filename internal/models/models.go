package models

import (
	"time"

	"gorm.io/gorm"
)

// SavedPalette is a palette config stored in the library. Only the inputs
// are stored; the scale is regenerated on read.
type SavedPalette struct {
	ID                    uint           `gorm:"primaryKey"`
	PublicID              string         `gorm:"uniqueIndex;size:36;not null"` // uuid used in URLs
	Name                  string         `gorm:"uniqueIndex;not null"`
	BaseHex               string         `gorm:"size:7;not null"` // #rrggbb
	Mode                  string         `gorm:"default:monochromatic"`
	Steps                 int            `gorm:"default:11"`
	PreserveAccessibility bool
	SemanticColors        bool
	DarkMode              bool // preferred theme.css variant
	Notes                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}
