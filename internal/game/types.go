// internal/game/types.go
//
// Core type definitions for the color-guessing game.
// Defines:
//   - Status: coarse game lifecycle (playing/won/lost).
//   - Guess: one scored attempt, immutable once appended.
//   - State: one day's progress — the record the daily store owns.
//   - Target: the day's answer resolved onto the grid.
//   - Store: the persistence port the session saves through.

package game

import "github.com/hueguess/go-server/internal/palette"

// Status is the game lifecycle. Won and Lost are terminal.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Guess is one scored attempt. Immutable after creation; appended to an
// ordered history capped at MaxAttempts.
type Guess struct {
	Color    string           `json:"color"`
	IsClose  bool             `json:"isClose"`
	Position palette.Position `json:"position"`
}

// State is one calendar day's progress.
type State struct {
	Guesses           []Guess `json:"guesses"`
	UnlockedClueCount int     `json:"unlockedClueCount"`
	Status            Status  `json:"status"`
	InstructionsSeen  bool    `json:"instructionsSeen"`
}

// NewState returns a fresh playing state. The first clue is unlocked up
// front so minimum information is never gated behind a wasted guess.
func NewState() State {
	return State{Guesses: []Guess{}, UnlockedClueCount: 1, Status: StatusPlaying}
}

// Target is the day's answer: its color, where it sits on the grid,
// and the ordered clue band revealed as guesses are used.
type Target struct {
	Color    string
	Position palette.Position
	Clues    []string
}

// Store is the persistence port for daily state.
// Implementations may be backed by memory, SQLite, etc.
type Store interface {
	// Load returns today's state, reporting absence for missing,
	// stale, or unreadable records.
	Load() (State, bool)

	// Save persists the state stamped with today's date key.
	Save(State) error

	// Clear removes the persisted state unconditionally.
	Clear() error
}
