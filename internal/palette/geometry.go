// internal/palette/geometry.go
//
// Position lookup and proximity scoring on the palette grid.
// Defines:
//   - Position: (row, col) board coordinate.
//   - PositionOf: exact lookup with nearest-color fallback (never fails).
//   - Chebyshev / WithinProximity: the "close" feedback tier.

package palette

import (
	"strconv"
	"strings"
)

// Position is a 0-indexed board coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionOf locates a color on the grid. Exact matches are case-insensitive;
// when the color is not a grid member (targets are configured independently
// of the grid) it falls back to the nearest entry by Euclidean distance in
// RGB space, ties going to the first in scan order, so lookup never fails.
// An empty grid returns the zero Position; grids are non-empty by
// construction, so that is a precondition violation rather than an error.
func PositionOf(g Grid, color string) Position {
	for i, c := range g {
		if strings.EqualFold(c, color) {
			return positionAt(i)
		}
	}

	qr, qg, qb := rgb(color)
	best, bestDist := 0, int(^uint(0)>>1)
	for i, c := range g {
		cr, cg, cb := rgb(c)
		d := sq(cr-qr) + sq(cg-qg) + sq(cb-qb)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return positionAt(best)
}

// Chebyshev returns max(|Δrow|, |Δcol|) between two positions.
func Chebyshev(a, b Position) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

// WithinProximity reports whether a and b are within max grid cells of each
// other, diagonals included. Distance zero is an exact match — a separate
// feedback tier — and deliberately does not count as "close".
func WithinProximity(a, b Position, max int) bool {
	d := Chebyshev(a, b)
	return d > 0 && d <= max
}

func positionAt(index int) Position {
	return Position{Row: index / Cols, Col: index % Cols}
}

// rgb parses "#RRGGBB" into integer channels. Malformed channels parse as 0;
// inputs are validated at the boundary (IsHexColor) before reaching here.
func rgb(color string) (r, g, b int) {
	s := strings.TrimPrefix(color, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	return hexByte(s[0:2]), hexByte(s[2:4]), hexByte(s[4:6])
}

func hexByte(s string) int {
	n, _ := strconv.ParseUint(s, 16, 8)
	return int(n)
}

func sq(n int) int { return n * n }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
