// SPDX-License-Identifier: MIT

// Package render draws palettes as images: flat PNG swatch strips and
// lightness curve plots.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/thatcatcamp/palettekit/internal/colors"
	"github.com/thatcatcamp/palettekit/internal/palettes"
)

const (
	// DefaultSwatchWidth is used when the configured width is zero
	DefaultSwatchWidth = 880
	// DefaultSwatchHeight is used when the configured height is zero
	DefaultSwatchHeight = 160
	// MaxSwatchSize caps either dimension
	MaxSwatchSize = 4096
)

// ErrEmptyPalette is returned when there is nothing to draw
var ErrEmptyPalette = errors.New("palette has no scale entries")

// SwatchSize is the pixel size of a swatch image
type SwatchSize struct {
	Width  int
	Height int
}

func (s SwatchSize) normalized() (SwatchSize, error) {
	if s.Width == 0 {
		s.Width = DefaultSwatchWidth
	}
	if s.Height == 0 {
		s.Height = DefaultSwatchHeight
	}
	if s.Width < 0 || s.Height < 0 || s.Width > MaxSwatchSize || s.Height > MaxSwatchSize {
		return s, fmt.Errorf("invalid swatch size %dx%d", s.Width, s.Height)
	}
	return s, nil
}

// Swatch draws the scale as equal vertical bands. When the palette has
// semantic colors they fill a strip along the bottom quarter.
func Swatch(p palettes.Palette, size SwatchSize) (*image.NRGBA, error) {
	if len(p.Scale) == 0 {
		return nil, ErrEmptyPalette
	}
	size, err := size.normalized()
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height))
	scaleRect := dst.Bounds()

	if p.Semantic != nil && size.Height >= 4 {
		band := size.Height / 4
		scaleRect.Max.Y -= band
		semantic := []colors.Color{p.Semantic.Success, p.Semantic.Warning, p.Semantic.Error, p.Semantic.Info}
		semanticRect := image.Rect(0, scaleRect.Max.Y, size.Width, size.Height)
		draw.NearestNeighbor.Scale(dst, semanticRect, strip(semantic), image.Rect(0, 0, len(semantic), 1), draw.Src, nil)
	}

	entries := make([]colors.Color, len(p.Scale))
	for i, e := range p.Scale {
		entries[i] = e.Color
	}
	draw.NearestNeighbor.Scale(dst, scaleRect, strip(entries), image.Rect(0, 0, len(entries), 1), draw.Src, nil)

	return dst, nil
}

// strip lays colors out one pixel each so a nearest neighbour scale turns
// them into solid bands
func strip(cs []colors.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(cs), 1))
	for i, c := range cs {
		img.SetNRGBA(i, 0, colors.ToHex(c).NRGBA())
	}
	return img
}

// WriteSwatchPNG encodes the swatch of p to w
func WriteSwatchPNG(w io.Writer, p palettes.Palette, size SwatchSize) error {
	img, err := Swatch(p, size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode swatch: %w", err)
	}
	return nil
}

// SaveSwatch writes the swatch of p as a PNG file, creating parent directories
func SaveSwatch(path string, p palettes.Palette, size SwatchSize) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create swatch file: %w", err)
	}
	defer f.Close()

	return WriteSwatchPNG(f, p, size)
}
