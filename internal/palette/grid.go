// internal/palette/grid.go
//
// Deterministic palette grid generation.
//
// The grid is a fixed 16×20 board of hex colors: hue sweeps left to right,
// the top four rows form a "tint band" (very light washes of every hue) and
// the remaining rows a "spectrum band" that darkens toward the bottom. The
// layout is what makes the proximity mechanic work: spatial distance on the
// board approximates perceptual distance between colors.
//
// Generation is a pure function of the package constants — no randomness,
// no error conditions, identical output on every call.

package palette

import (
	"fmt"
	"math"
)

const (
	// Rows and Cols are the fixed board dimensions.
	Rows = 16
	Cols = 20

	// tintRows is the number of light "tint band" rows at the top.
	tintRows = 4
)

// Grid is the ordered palette: index = row*Cols + col.
// All entries are distinct uppercase "#RRGGBB" strings by construction.
type Grid []string

// Generate builds the palette grid.
func Generate() Grid {
	g := make(Grid, 0, Rows*Cols)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			hue := float64(col) / Cols * 360
			var lightness float64
			if row < tintRows {
				lightness = 95 - float64(row)*10
			} else {
				lightness = 60 - float64(row-tintRows)*4
			}
			g = append(g, hslToHex(hue, 100, lightness))
		}
	}
	return g
}

// hslToHex converts HSL (h in [0,360), s and l in [0,100]) to an uppercase
// "#RRGGBB" string using the standard chroma/intermediate/match formula with
// six 60°-wide hue sectors.
func hslToHex(h, s, l float64) string {
	s /= 100
	l /= 100
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return fmt.Sprintf("#%02X%02X%02X", channel(r+m), channel(g+m), channel(b+m))
}

// channel scales a [0,1] value to an 8-bit channel.
func channel(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// IsHexColor reports whether s is a well-formed "#RRGGBB" color
// (either case accepted).
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < 7; i++ {
		c := s[i]
		ok := c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
		if !ok {
			return false
		}
	}
	return true
}
