// SPDX-License-Identifier: MIT
package colors

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rgbFuncRegex = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	hslFuncRegex = regexp.MustCompile(`^hsl\(\s*(-?\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)%?\s*,\s*(\d+(?:\.\d+)?)%?\s*\)$`)
)

// namedColors is a subset of the CSS named colors.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"gray":    "#808080",
	"grey":    "#808080",
	"navy":    "#000080",
	"teal":    "#008080",
	"olive":   "#808000",
	"maroon":  "#800000",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"lime":    "#00ff00",
	"silver":  "#c0c0c0",
	"indigo":  "#4b0082",
	"violet":  "#ee82ee",
	"coral":   "#ff7f50",
	"crimson": "#dc143c",
	"gold":    "#ffd700",
	"salmon":  "#fa8072",
	"tomato":  "#ff6347",
}

// ParseCSS accepts everything Parse does plus rgb(r, g, b), hsl(h, s%, l%)
// and common CSS color names. Out-of-range numbers are rejected, not clamped.
func ParseCSS(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))

	if hex, ok := namedColors[in]; ok {
		return MustParseHex(hex), nil
	}

	if m := rgbFuncRegex.FindStringSubmatch(in); m != nil {
		var ch [3]float64
		for i := range ch {
			v, _ := strconv.Atoi(m[i+1])
			if v > 255 {
				return nil, &ParseError{Input: s, Reason: "rgb channel out of range"}
			}
			ch[i] = float64(v)
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	}

	if m := hslFuncRegex.FindStringSubmatch(in); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		sat, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		if sat > 100 || l > 100 {
			return nil, &ParseError{Input: s, Reason: "saturation and lightness must be at most 100"}
		}
		return NewHSL(h, sat, l), nil
	}

	if strings.HasPrefix(in, "rgb(") || strings.HasPrefix(in, "hsl(") {
		return nil, &ParseError{Input: s, Reason: "malformed color function"}
	}
	return Parse(in)
}
