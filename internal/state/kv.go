// internal/state/kv.go
//
// Minimal key-value port the daily store persists through, plus the
// in-memory implementation used in development and tests.
//
// Characteristics of the memory implementation:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package state

import "sync"

// KV is a string key-value store: the persistence boundary behind the daily
// store. Implementations may be backed by memory (this package), SQLite
// (sqlite.go), browser storage on a client port, etc.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)

	// Set writes the value for key. Last write wins.
	Set(key, value string) error

	// Remove deletes the key. Removing a missing key is not an error.
	Remove(key string) error
}

// memoryKV is an in-memory map-based KV implementation.
type memoryKV struct {
	mu sync.RWMutex // guards m
	m  map[string]string
}

// NewMemoryKV constructs a new in-memory KV.
func NewMemoryKV() KV {
	return &memoryKV{m: make(map[string]string)}
}

func (s *memoryKV) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memoryKV) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *memoryKV) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
