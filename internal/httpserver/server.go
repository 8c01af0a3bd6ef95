// internal/httpserver/server.go
//
// HTTP wiring for the hueguess backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/palette".
//   - Puzzle endpoints (anonymous identity): mounted in routes_puzzle.go.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so the identity cookie
//     works from the web client).
//   - There are no accounts: every browser gets a signed anonymous identity
//     cookie that scopes its daily record, the server-side stand-in for
//     localStorage being per-browser.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hueguess/go-server/internal/palette"
	"github.com/hueguess/go-server/internal/puzzle"
	"github.com/hueguess/go-server/internal/state"
)

// Server bundles the router, the KV backing daily state, and the puzzle source.
type Server struct {
	r      *chi.Mux
	kv     state.KV
	source puzzle.Source
	grid   palette.Grid
}

// New constructs a Server, installs middleware, and registers routes.
func New(kv state.KV, source puzzle.Source) *Server {
	s := &Server{r: chi.NewRouter(), kv: kv, source: source, grid: palette.Generate()}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hueguess-go","endpoints":["/health","GET /puzzle/grid","GET /puzzle/state","POST /puzzle/guess","GET /instructions","POST /instructions/seen"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Puzzle endpoints — every request runs under an anonymous player identity.
	s.mountPuzzle(s.r.With(s.withPlayer()))

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	// Debug: palette/catalog counts
	s.r.Get("/debug/palette", func(w http.ResponseWriter, r *http.Request) {
		counts := map[string]int{"colors": len(s.grid), "rows": palette.Rows, "cols": palette.Cols}
		if c, ok := source.(interface{ Len() int }); ok {
			counts["puzzles"] = c.Len()
		}
		_ = json.NewEncoder(w).Encode(counts)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
