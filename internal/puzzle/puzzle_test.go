package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueguess/go-server/internal/palette"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	t.Setenv("PUZZLES_FILE", "")

	ps, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, ps)

	grid := palette.Generate()
	onGrid := make(map[string]struct{}, len(grid))
	for _, c := range grid {
		onGrid[c] = struct{}{}
	}
	for i, p := range ps {
		assert.True(t, palette.IsHexColor(p.TargetColor), "entry %d target", i)
		assert.Len(t, p.Clues, 3, "entry %d clue band", i)
		// The shipped catalog only names grid members; the nearest-color
		// fallback stays reserved for operator-supplied files.
		_, ok := onGrid[p.TargetColor]
		assert.True(t, ok, "entry %d target %s not on grid", i, p.TargetColor)
	}
}

func TestLoadFromFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzles.json")
	body := `[{"targetColor":"#1fffff","clues":["one","two"]}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("PUZZLES_FILE", path)

	ps, err := Load()
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "#1FFFFF", ps[0].TargetColor, "target must be canonicalized uppercase")
	assert.Equal(t, []string{"one", "two"}, ps[0].Clues)
}

func TestLoadRejectsBadCatalogs(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `{nope`},
		{"empty list", `[]`},
		{"bad color", `[{"targetColor":"teal","clues":["a"]}]`},
		{"no clues", `[{"targetColor":"#1FFFFF","clues":[]}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "puzzles.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))
			t.Setenv("PUZZLES_FILE", path)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestCatalogForDateIsDeterministic(t *testing.T) {
	ps := []Puzzle{
		{TargetColor: "#FF3333", Clues: []string{"a"}},
		{TargetColor: "#1FFFFF", Clues: []string{"b"}},
		{TargetColor: "#72008F", Clues: []string{"c"}},
	}
	c, err := NewCatalog(ps, "salt")
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	first := c.ForDate("2026-08-26")
	assert.Equal(t, first, c.ForDate("2026-08-26"))
	assert.Contains(t, ps, first)
}

func TestNewCatalogRejectsEmpty(t *testing.T) {
	_, err := NewCatalog(nil, "salt")
	assert.Error(t, err)
}

func TestFixedAlwaysServesSamePuzzle(t *testing.T) {
	f := Fixed{TargetColor: "#1FFFFF", Clues: []string{"a", "b", "c"}}
	assert.Equal(t, Puzzle(f), f.ForDate("2026-08-26"))
	assert.Equal(t, Puzzle(f), f.ForDate("1999-12-31"))
}
