// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thatcatcamp/palettekit/internal/colors"
	"github.com/thatcatcamp/palettekit/internal/palettes"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(10)

	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// chip renders text on a solid background of c with readable foreground
func chip(c colors.Color, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(colors.HexString(c))).
		Foreground(lipgloss.Color(colors.HexString(colors.ReadableOn(c)))).
		Padding(0, 1).
		Render(text)
}

func mark(ok bool) string {
	if ok {
		return passStyle.Render("AA")
	}
	return failStyle.Render("--")
}

// renderPreview draws the scale, semantic colors and harmonies for a terminal
func renderPreview(p palettes.Palette) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s  (%s)", p.Name, colors.HexString(p.BaseColor), p.Mode)))
	b.WriteString("\n")

	for _, e := range p.Scale {
		fmt.Fprintf(&b, "%s  %s  white %5.2f %s  black %5.2f %s\n",
			chip(e.Color, fmt.Sprintf("%4d", e.Weight)),
			e.Hex,
			e.ContrastWithWhite, mark(e.MeetsAAOnWhite),
			e.ContrastWithBlack, mark(e.MeetsAAOnBlack),
		)
	}

	if p.Semantic != nil {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("semantic"))
		for _, s := range []struct {
			name string
			c    colors.HSL
		}{
			{"success", p.Semantic.Success},
			{"warning", p.Semantic.Warning},
			{"error", p.Semantic.Error},
			{"info", p.Semantic.Info},
		} {
			b.WriteString(chip(s.c, s.name+" "+colors.HexString(s.c)))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	if h := harmonyRow(p); h != "" {
		b.WriteString(h)
	}
	return b.String()
}

func harmonyRow(p palettes.Palette) string {
	var label string
	var hues []colors.HSL
	switch {
	case p.Complementary != nil:
		label, hues = "complement", []colors.HSL{*p.Complementary}
	case p.Analogous != nil:
		label, hues = "analogous", p.Analogous[:]
	case p.Triadic != nil:
		label, hues = "triadic", p.Triadic[:]
	default:
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(label))
	for _, h := range hues {
		b.WriteString(chip(h, colors.HexString(h)))
		b.WriteString(" ")
	}
	b.WriteString("\n")
	return b.String()
}
