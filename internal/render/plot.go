// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/thatcatcamp/palettekit/internal/colors"
	"github.com/thatcatcamp/palettekit/internal/palettes"
)

// CurvePoints returns HSL lightness and saturation per weight
func CurvePoints(p palettes.Palette) (lightness, saturation plotter.XYs) {
	lightness = make(plotter.XYs, len(p.Scale))
	saturation = make(plotter.XYs, len(p.Scale))
	for i, e := range p.Scale {
		hsl := colors.ToHSL(e.Color)
		lightness[i].X = float64(e.Weight)
		lightness[i].Y = hsl.L
		saturation[i].X = float64(e.Weight)
		saturation[i].Y = hsl.S
	}
	return lightness, saturation
}

// LightnessPlot builds a plot of the scale's lightness and saturation curves,
// with each lightness point drawn in its own color
func LightnessPlot(p palettes.Palette) (*plot.Plot, error) {
	if len(p.Scale) == 0 {
		return nil, ErrEmptyPalette
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s (%s)", p.Name, p.Mode)
	pl.X.Label.Text = "Weight"
	pl.Y.Label.Text = "Percent"
	pl.Y.Min = 0
	pl.Y.Max = 100
	pl.X.Width = 2
	pl.Y.Width = 2
	pl.BackgroundColor = color.White
	pl.Add(plotter.NewGrid())

	lightness, saturation := CurvePoints(p)

	l, err := plotter.NewLine(lightness)
	if err != nil {
		return nil, fmt.Errorf("failed to build lightness line: %w", err)
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = color.Black
	pl.Add(l)
	pl.Legend.Add("lightness", l)

	s, err := plotter.NewLine(saturation)
	if err != nil {
		return nil, fmt.Errorf("failed to build saturation line: %w", err)
	}
	s.LineStyle.Width = vg.Points(1)
	s.LineStyle.Color = color.Gray{Y: 0x80}
	s.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	pl.Add(s)
	pl.Legend.Add("saturation", s)

	points, err := plotter.NewScatter(lightness)
	if err != nil {
		return nil, fmt.Errorf("failed to build swatch points: %w", err)
	}
	points.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  colors.ToHex(p.Scale[i].Color).NRGBA(),
			Radius: vg.Points(6),
			Shape:  draw.CircleGlyph{},
		}
	}
	pl.Add(points)

	return pl, nil
}

// WritePlotPNG renders the lightness plot of p to w
func WritePlotPNG(w io.Writer, p palettes.Palette) error {
	pl, err := LightnessPlot(p)
	if err != nil {
		return err
	}

	c := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(25*vg.Centimeter, 12*vg.Centimeter),
		vgimg.UseBackgroundColor(color.White),
	)}
	pl.Draw(draw.New(c))

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode plot: %w", err)
	}
	return nil
}

// SavePlot writes the lightness plot of p as a PNG file
func SavePlot(path string, p palettes.Palette) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file: %w", err)
	}
	defer f.Close()

	return WritePlotPNG(f, p)
}
