// internal/httpserver/session.go
//
// Anonymous player identity.
//
// Every browser gets a stable identifier carried in a signed HS256 cookie.
// The signature means a tampered cookie degrades to a fresh identity rather
// than landing on some other player's record key. No accounts, no passwords:
// the identity only scopes the daily state record, the way localStorage is
// scoped to one browser.

package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const playerCookieLifetime = 180 * 24 * time.Hour

// ctxPlayerKey is the context key type for the player ID.
type ctxPlayerKey struct{}

// withPlayer decorates every request with a player ID, minting a new signed
// cookie when none is present or the presented one does not verify.
func (s *Server) withPlayer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := s.ensurePlayerID(w, r)
			ctx := context.WithValue(r.Context(), ctxPlayerKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// playerID returns the identity installed by withPlayer.
func playerID(r *http.Request) string {
	id, _ := r.Context().Value(ctxPlayerKey{}).(string)
	return id
}

// ensurePlayerID returns the verified identity from the cookie, or mints and
// sets a fresh one.
func (s *Server) ensurePlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cookieName()); err == nil && c.Value != "" {
		if id := verifyPlayerToken(c.Value); id != "" {
			return id
		}
	}

	id := genID()
	tok, exp, err := signPlayerToken(id)
	if err != nil {
		// Unsignable token means the identity only lives for this request;
		// the next request mints another.
		return id
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName(),
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("NODE_ENV") == "production",
		SameSite: func() http.SameSite {
			if os.Getenv("NODE_ENV") == "production" {
				return http.SameSiteNoneMode
			}
			return http.SameSiteLaxMode
		}(),
		Expires: exp,
	})
	return id
}

// signPlayerToken creates an HS256 token carrying the player ID.
func signPlayerToken(id string) (string, time.Time, error) {
	exp := time.Now().Add(playerCookieLifetime)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  id,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(jwtSecret()))
	return ss, exp, err
}

// verifyPlayerToken returns the player ID for a valid token, "" otherwise.
func verifyPlayerToken(tok string) string {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret()), nil
	})
	if err != nil || !t.Valid {
		return ""
	}
	id, _ := claims["id"].(string)
	return id
}

func cookieName() string { return getEnv("COOKIE_NAME", "hueguess_player") }

func jwtSecret() string { return getEnv("JWT_SECRET", "dev_secret_change_me") }

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
