package themes

import (
	"github.com/thatcatcamp/palettekit/internal/colors"
)

// Seed is a named brand color a palette can start from
type Seed struct {
	Name      string // "slate", "indigo", etc.
	Primary   string // hex color #RRGGBB
	Secondary string // accent hex color #RRGGBB
}

// Color returns the parsed primary color
func (s *Seed) Color() colors.Hex {
	return colors.MustParseHex(s.Primary)
}

// AccentColor returns the parsed secondary color
func (s *Seed) AccentColor() colors.Hex {
	return colors.MustParseHex(s.Secondary)
}

var seeds = map[string]*Seed{
	"slate":      {Name: "slate", Primary: "#64748b", Secondary: "#0f172a"},
	"indigo":     {Name: "indigo", Primary: "#4f46e5", Secondary: "#f97316"},
	"rose":       {Name: "rose", Primary: "#e11d48", Secondary: "#64748b"},
	"emerald":    {Name: "emerald", Primary: "#059669", Secondary: "#f59e0b"},
	"navy":       {Name: "navy", Primary: "#000080", Secondary: "#fbbf24"},
	"purple":     {Name: "purple", Primary: "#a855f7", Secondary: "#ec4899"},
	"teal":       {Name: "teal", Primary: "#14b8a6", Secondary: "#f87171"},
	"amber":      {Name: "amber", Primary: "#f59e0b", Secondary: "#6366f1"},
	"rose-mono":  {Name: "rose-mono", Primary: "#e11d48", Secondary: "#c41e3a"},
	"green-mono": {Name: "green-mono", Primary: "#22c55e", Secondary: "#16a34a"},
	"blue-mono":  {Name: "blue-mono", Primary: "#3b82f6", Secondary: "#1e40af"},
	"neutral":    {Name: "neutral", Primary: "#6b7280", Secondary: "#4b5563"},
}

var seedOrder = []string{
	"slate", "indigo", "rose", "emerald", "navy", "purple",
	"teal", "amber", "rose-mono", "green-mono", "blue-mono", "neutral",
}

// GetSeed returns a seed by name, or nil
func GetSeed(name string) *Seed {
	return seeds[name]
}

// ListSeeds returns all seeds in display order
func ListSeeds() []*Seed {
	var out []*Seed
	for _, name := range seedOrder {
		if s := GetSeed(name); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// ResolveColor accepts a seed name or anything colors.ParseCSS understands
func ResolveColor(input string) (colors.Color, error) {
	if s := GetSeed(input); s != nil {
		return s.Color(), nil
	}
	return colors.ParseCSS(input)
}
