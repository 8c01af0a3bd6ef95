package palette

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionOfExactMatches(t *testing.T) {
	g := Generate()
	for i, c := range g {
		pos := PositionOf(g, c)
		require.Equal(t, i, pos.Row*Cols+pos.Col, "color %s", c)
	}
}

func TestPositionOfIsCaseInsensitive(t *testing.T) {
	g := Generate()
	assert.Equal(t, Position{Row: 5, Col: 10}, PositionOf(g, strings.ToLower("#1FFFFF")))
}

// The fallback is only reachable when a configured target color is not a grid
// member; it must land on the perceptually nearest cell rather than fail.
func TestPositionOfFallsBackToNearest(t *testing.T) {
	g := Generate()
	// One off in the red channel from the cyan at (5,10).
	assert.Equal(t, Position{Row: 5, Col: 10}, PositionOf(g, "#20FFFF"))
}

func TestPositionOfFallbackTiesGoToFirst(t *testing.T) {
	g := Grid{"#000000", "#000004", "#000004"}
	// "#000002" is equidistant from every entry; scan order wins.
	assert.Equal(t, Position{Row: 0, Col: 0}, PositionOf(g, "#000002"))
}

func TestPositionOfEmptyGrid(t *testing.T) {
	// Precondition violation, not an error: the zero position comes back.
	assert.Equal(t, Position{}, PositionOf(Grid{}, "#123456"))
}

func TestChebyshev(t *testing.T) {
	a := Position{Row: 5, Col: 10}
	cases := []struct {
		b    Position
		want int
	}{
		{Position{Row: 5, Col: 10}, 0},
		{Position{Row: 4, Col: 10}, 1},
		{Position{Row: 4, Col: 11}, 1},
		{Position{Row: 7, Col: 10}, 2},
		{Position{Row: 5, Col: 2}, 8},
		{Position{Row: 0, Col: 0}, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Chebyshev(a, tc.b), "Chebyshev(%v, %v)", a, tc.b)
		assert.Equal(t, Chebyshev(a, tc.b), Chebyshev(tc.b, a), "must be symmetric")
	}
}

func TestWithinProximity(t *testing.T) {
	a := Position{Row: 5, Col: 10}
	cases := []struct {
		name string
		b    Position
		max  int
		want bool
	}{
		{"exact match is not close", Position{Row: 5, Col: 10}, 1, false},
		{"orthogonal neighbor", Position{Row: 4, Col: 10}, 1, true},
		{"diagonal neighbor", Position{Row: 6, Col: 11}, 1, true},
		{"two cells away", Position{Row: 7, Col: 10}, 1, false},
		{"wider radius", Position{Row: 7, Col: 10}, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WithinProximity(a, tc.b, tc.max))
			assert.Equal(t, WithinProximity(a, tc.b, tc.max), WithinProximity(tc.b, a, tc.max))
		})
	}
}
