// internal/httpserver/routes_puzzle.go
//
// HTTP routes for the daily color puzzle — the boundary the external web
// client renders from and forwards clicks to:
//   - GET  /puzzle/grid        → the static palette grid
//   - GET  /puzzle/state       → today's snapshot for the caller
//   - POST /puzzle/guess       → submit a guess, get the new snapshot
//   - GET  /instructions       → has this player seen the how-to today?
//   - POST /instructions/seen  → acknowledge the how-to
//
// Sessions are rebuilt per request from the persisted daily record, so the
// server itself stays stateless; the store owns the record lifecycle
// (including discarding yesterday's progress).

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hueguess/go-server/internal/daily"
	"github.com/hueguess/go-server/internal/game"
	"github.com/hueguess/go-server/internal/palette"
	"github.com/hueguess/go-server/internal/state"
)

// mountPuzzle registers the puzzle routes.
func (s *Server) mountPuzzle(r chi.Router) {
	r.Route("/puzzle", func(r chi.Router) {
		r.Get("/grid", s.handleGrid)
		r.Get("/state", s.handleState)
		r.Post("/guess", s.handleGuess)
	})
	r.Get("/instructions", s.handleInstructions)
	r.Post("/instructions/seen", s.handleInstructionsSeen)
}

// storeFor scopes a daily store to the requesting player.
func (s *Server) storeFor(r *http.Request) *state.Store {
	return state.NewStore(s.kv, "state:"+playerID(r))
}

// sessionFor assembles today's session for the requesting player.
func (s *Server) sessionFor(r *http.Request) (*game.Session, string) {
	dateKey := daily.DateKey(time.Now())
	p := s.source.ForDate(dateKey)
	target := game.ResolveTarget(s.grid, p.TargetColor, p.Clues)
	return game.NewSession(s.grid, target, s.storeFor(r)), dateKey
}

// -----------------------------------------------------------------------------
// /puzzle/grid

// gridRes is returned by GET /puzzle/grid.
type gridRes struct {
	Rows   int      `json:"rows"`
	Cols   int      `json:"cols"`
	Colors []string `json:"colors"`
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(gridRes{Rows: palette.Rows, Cols: palette.Cols, Colors: s.grid})
}

// -----------------------------------------------------------------------------
// /puzzle/state, /puzzle/guess

// stateRes is the snapshot payload shared by /puzzle/state and /puzzle/guess.
// The target color is never part of it while the game is in progress.
type stateRes struct {
	Date string `json:"date"`
	game.Snapshot
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, dateKey := s.sessionFor(r)
	_ = json.NewEncoder(w).Encode(stateRes{Date: dateKey, Snapshot: sess.Snapshot()})
}

// guessReq is the request payload for POST /puzzle/guess.
type guessReq struct {
	Color string `json:"color"`
}

// handleGuess submits one guess for today's puzzle.
// - 400 on malformed JSON or a color that isn't "#RRGGBB".
// - 409 when the core refuses (game over / attempts spent); state unchanged.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if !palette.IsHexColor(req.Color) {
		http.Error(w, `{"error":"invalid_color"}`, http.StatusBadRequest)
		return
	}

	sess, dateKey := s.sessionFor(r)
	snap, applied := sess.SubmitGuess(req.Color)
	if !applied {
		http.Error(w, `{"error":"not_playing"}`, http.StatusConflict)
		return
	}
	_ = json.NewEncoder(w).Encode(stateRes{Date: dateKey, Snapshot: snap})
}

// -----------------------------------------------------------------------------
// /instructions

func (s *Server) handleInstructions(w http.ResponseWriter, r *http.Request) {
	seen := s.storeFor(r).HasSeenInstructionsToday()
	_ = json.NewEncoder(w).Encode(map[string]bool{"seen": seen})
}

func (s *Server) handleInstructionsSeen(w http.ResponseWriter, r *http.Request) {
	if err := s.storeFor(r).MarkInstructionsSeen(); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
