package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC. Crossing midnight UTC starts a new day
// everywhere at once; persisted state is scoped to exactly one key.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PuzzleIndex returns a deterministic catalog index for a date key using
// HMAC(salt, dateKey) % catalogLen. The salt keeps the rotation unguessable
// without changing the catalog.
func PuzzleIndex(dateKey, salt string, catalogLen int) int {
	if catalogLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dateKey))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(catalogLen))
}
