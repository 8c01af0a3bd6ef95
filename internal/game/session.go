// internal/game/session.go
//
// Session controller for a single player's daily game.
// Responsibilities:
//   - Resume today's state from the store (or start fresh).
//   - Validate and apply guesses: proximity scoring, clue unlocking,
//     state transitions playing → won/lost.
//   - Persist every applied guess through the Store port.
//
// Notes:
//   - The controller holds no timing or rendering concerns; animation
//     sequencing is the presentation layer's problem.
//   - Out-of-turn guesses are defended no-ops, not errors: the UI disables
//     input once the game is over, and the controller refuses independently.

package game

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hueguess/go-server/internal/palette"
)

const (
	// MaxAttempts is the guess budget per day.
	MaxAttempts = 3

	// proximityRadius is the Chebyshev distance, in grid cells, that still
	// counts as "close" (1 = the eight surrounding cells).
	proximityRadius = 1
)

// Session orchestrates guesses for one player's daily game.
type Session struct {
	grid   palette.Grid
	target Target
	store  Store
	state  State
}

// NewSession loads today's state from the store, starting fresh when the
// store reports absence.
func NewSession(grid palette.Grid, target Target, store Store) *Session {
	st, ok := store.Load()
	if !ok {
		st = NewState()
	}
	return &Session{grid: grid, target: target, store: store, state: st}
}

// ResolveTarget places a configured target color on the grid. Colors not
// actually present in the grid land on their nearest grid cell.
func ResolveTarget(grid palette.Grid, color string, clues []string) Target {
	return Target{
		Color:    strings.ToUpper(color),
		Position: palette.PositionOf(grid, color),
		Clues:    clues,
	}
}

// Snapshot is the render state handed to the presentation layer.
type Snapshot struct {
	Guesses           []Guess  `json:"guesses"`
	UnlockedClueCount int      `json:"unlockedClueCount"`
	Clues             []string `json:"clues"`
	Status            Status   `json:"status"`
	InstructionsSeen  bool     `json:"instructionsSeen"`
}

// SubmitGuess applies one guess and persists the result. The returned bool
// reports whether the guess was applied; guesses arriving after the game is
// over or the attempt budget is spent leave the state untouched.
//
// Transitions:
//   - Guessed color equals the target (case-insensitive) → won.
//   - Third wrong guess → lost, every clue unlocked.
//   - Otherwise → one more clue unlocked (guess count + 1, so the first
//     clue is visible before any guess is spent).
func (s *Session) SubmitGuess(color string) (Snapshot, bool) {
	if s.state.Status != StatusPlaying || len(s.state.Guesses) >= MaxAttempts {
		return s.Snapshot(), false
	}

	color = strings.ToUpper(strings.TrimSpace(color))
	pos := palette.PositionOf(s.grid, color)
	s.state.Guesses = append(s.state.Guesses, Guess{
		Color:    color,
		IsClose:  palette.WithinProximity(pos, s.target.Position, proximityRadius),
		Position: pos,
	})

	switch {
	case strings.EqualFold(color, s.target.Color):
		s.state.Status = StatusWon
	case len(s.state.Guesses) >= MaxAttempts:
		s.state.Status = StatusLost
		s.state.UnlockedClueCount = len(s.target.Clues)
	default:
		s.state.UnlockedClueCount = min(len(s.state.Guesses)+1, len(s.target.Clues))
	}

	// Persistence is best effort: a failed write costs resumability,
	// never the in-flight game.
	if err := s.store.Save(s.state); err != nil {
		log.Warn().Err(err).Msg("game: persist state")
	}
	return s.Snapshot(), true
}

// Snapshot returns the current render state. The guess history is copied so
// callers can't mutate the session's append-only log.
func (s *Session) Snapshot() Snapshot {
	n := min(s.state.UnlockedClueCount, len(s.target.Clues))
	return Snapshot{
		Guesses:           append([]Guess{}, s.state.Guesses...),
		UnlockedClueCount: n,
		Clues:             s.target.Clues[:n],
		Status:            s.state.Status,
		InstructionsSeen:  s.state.InstructionsSeen,
	}
}
