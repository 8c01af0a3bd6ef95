// internal/puzzle/puzzle.go
//
// Daily puzzle configuration: the target color and its clue band.
//
// Responsibilities:
//   - Load the puzzle catalog from an environment-provided file or fall back
//     to the embedded default catalog.
//   - Select "today's puzzle" deterministically per date key (Catalog), or
//     serve a constant one (Fixed).
//
// The rotation is intentionally pluggable: anything implementing Source can
// stand in for the shipped catalog (a remote scheduler, a hand-curated
// calendar, a fixed test puzzle).
//
// Environment variables:
//   PUZZLES_FILE=/path/to/puzzles.json
//
// Constraints:
//   • Target colors must be well-formed "#RRGGBB"; normalized to uppercase.
//   • Every puzzle must carry at least one clue.

package puzzle

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hueguess/go-server/internal/daily"
	"github.com/hueguess/go-server/internal/palette"
)

//go:embed puzzles.json
var embeddedCatalog []byte

// Puzzle is one day's target color and its ordered clue band.
type Puzzle struct {
	TargetColor string   `json:"targetColor"`
	Clues       []string `json:"clues"`
}

// Source supplies the puzzle for a given date key.
type Source interface {
	ForDate(dateKey string) Puzzle
}

// Fixed is a Source that always serves the same puzzle.
type Fixed Puzzle

func (f Fixed) ForDate(string) Puzzle { return Puzzle(f) }

// Catalog is a Source that rotates deterministically through a list of
// puzzles: index = HMAC(salt, dateKey) % len.
type Catalog struct {
	puzzles []Puzzle
	salt    string
}

// NewCatalog wraps a validated puzzle list.
func NewCatalog(puzzles []Puzzle, salt string) (*Catalog, error) {
	if len(puzzles) == 0 {
		return nil, errors.New("puzzle: empty catalog")
	}
	return &Catalog{puzzles: puzzles, salt: salt}, nil
}

// ForDate returns the puzzle for the given date key.
func (c *Catalog) ForDate(dateKey string) Puzzle {
	return c.puzzles[daily.PuzzleIndex(dateKey, c.salt, len(c.puzzles))]
}

// Len reports the catalog size.
func (c *Catalog) Len() int { return len(c.puzzles) }

// Load returns the puzzle catalog: the JSON file named by PUZZLES_FILE when
// set, otherwise the embedded default catalog.
func Load() ([]Puzzle, error) {
	if path := os.Getenv("PUZZLES_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("puzzle: read %s: %w", path, err)
		}
		return parseCatalog(b)
	}
	return parseCatalog(embeddedCatalog)
}

// parseCatalog decodes and validates a JSON puzzle list,
// normalizing target colors to uppercase.
func parseCatalog(b []byte) ([]Puzzle, error) {
	var ps []Puzzle
	if err := json.Unmarshal(b, &ps); err != nil {
		return nil, fmt.Errorf("puzzle: parse catalog: %w", err)
	}
	if len(ps) == 0 {
		return nil, errors.New("puzzle: catalog is empty")
	}
	for i := range ps {
		if !palette.IsHexColor(ps[i].TargetColor) {
			return nil, fmt.Errorf("puzzle: entry %d: bad target color %q", i, ps[i].TargetColor)
		}
		if len(ps[i].Clues) == 0 {
			return nil, fmt.Errorf("puzzle: entry %d: no clues", i)
		}
		ps[i].TargetColor = strings.ToUpper(ps[i].TargetColor)
	}
	return ps, nil
}
