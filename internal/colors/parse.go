// SPDX-License-Identifier: MIT
package colors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColor is wrapped by every ParseError.
var ErrInvalidColor = errors.New("invalid color")

// ParseError reports input that could not be read as a color.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidColor) match.
func (e *ParseError) Unwrap() error {
	return ErrInvalidColor
}

// ParseHex parses "#rrggbb" or "rrggbb" (either case).
func ParseHex(s string) (Hex, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(clean) != 6 {
		return Hex{}, &ParseError{Input: s, Reason: "must be exactly 6 hex digits"}
	}

	var digits [6]uint8
	for i := 0; i < 6; i++ {
		d, ok := hexDigit(clean[i])
		if !ok {
			return Hex{}, &ParseError{Input: s, Reason: fmt.Sprintf("non-hex character %q", clean[i])}
		}
		digits[i] = d
	}

	return Hex{
		r: digits[0]<<4 | digits[1],
		g: digits[2]<<4 | digits[3],
		b: digits[4]<<4 | digits[5],
	}, nil
}

// MustParseHex is ParseHex for constants; it panics on bad input.
func MustParseHex(s string) Hex {
	h, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return h
}

// HexToRGB parses a hex string straight to RGB.
func HexToRGB(s string) (RGB, error) {
	h, err := ParseHex(s)
	if err != nil {
		return RGB{}, err
	}
	return h.RGB(), nil
}

// Parse is the engine's input parser. Only hex strings are accepted; see
// ParseCSS for the looser format used by the CLI and the HTTP API.
func Parse(s string) (Color, error) {
	h, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// RGB returns the channels of a hex color.
func (c Hex) RGB() RGB {
	return RGB{R: float64(c.r), G: float64(c.g), B: float64(c.b)}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// MarshalText encodes the color as #rrggbb.
func (c Hex) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses #rrggbb or rrggbb.
func (c *Hex) UnmarshalText(text []byte) error {
	h, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = h
	return nil
}
