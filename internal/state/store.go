// internal/state/store.go
//
// Daily game-state store: persists exactly one named record through a KV
// port and scopes it to one calendar day.
//
// Failure taxonomy (all fail soft, none surface to the player):
//   - missing record            → absent
//   - unparseable record        → discarded, absent
//   - record from a prior day   → discarded, absent
//
// Crossing midnight UTC invalidates all prior progress on the next load.

package state

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hueguess/go-server/internal/daily"
	"github.com/hueguess/go-server/internal/game"
)

// record is the persisted shape: the game state plus the day it belongs to.
type record struct {
	DateKey string `json:"dateKey"`
	game.State
}

// Store owns one daily game-state record. It implements game.Store.
type Store struct {
	kv  KV
	key string
	now func() time.Time // stubbed in tests for day-rollover coverage
}

// NewStore builds a store over kv for a single record key.
func NewStore(kv KV, key string) *Store {
	return &Store{kv: kv, key: key, now: time.Now}
}

// Load returns today's state. Missing, unreadable and stale records are all
// reported as absent; discarded records are removed from the underlying
// storage on the way out.
func (s *Store) Load() (game.State, bool) {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		log.Debug().Err(err).Str("key", s.key).Msg("state: read failed, treating as absent")
		return game.State{}, false
	}
	if !ok {
		return game.State{}, false
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		log.Debug().Err(err).Str("key", s.key).Msg("state: corrupt record discarded")
		_ = s.kv.Remove(s.key)
		return game.State{}, false
	}
	if rec.DateKey != daily.DateKey(s.now()) {
		_ = s.kv.Remove(s.key)
		return game.State{}, false
	}
	return rec.State, true
}

// Save stamps today's date key and writes the record. Last write wins; the
// single active player is the only logical writer.
func (s *Store) Save(st game.State) error {
	b, err := json.Marshal(record{DateKey: daily.DateKey(s.now()), State: st})
	if err != nil {
		return err
	}
	return s.kv.Set(s.key, string(b))
}

// Clear removes the persisted record unconditionally.
func (s *Store) Clear() error {
	return s.kv.Remove(s.key)
}

// HasSeenInstructionsToday reports whether today's record has the
// instructions flag set.
func (s *Store) HasSeenInstructionsToday() bool {
	st, ok := s.Load()
	return ok && st.InstructionsSeen
}

// MarkInstructionsSeen patches today's record, creating a minimal fresh
// playing record when none exists yet.
func (s *Store) MarkInstructionsSeen() error {
	st, ok := s.Load()
	if !ok {
		st = game.NewState()
	}
	st.InstructionsSeen = true
	return s.Save(st)
}
