// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"net/http"
	"time"
)

// CookieName is the client-held credential carrying the voter ID
const CookieName = "voter_id"

// TokenBytes is the number of random bytes in a voter ID (128 bits).
// Tokens are hex encoded, so they are always 2*TokenBytes characters long.
const TokenBytes = 16

// DefaultMaxAge keeps the cookie for ten years
const DefaultMaxAge = 10 * 365 * 24 * time.Hour

// Resolver derives a stable anonymous voter ID for each request.
// It holds no mutable state; it is safe for concurrent use as long as the
// random source is (crypto/rand is).
type Resolver struct {
	rand io.Reader
}

// NewResolver returns a Resolver drawing tokens from r.
// A nil reader means crypto/rand.
func NewResolver(r io.Reader) *Resolver {
	if r == nil {
		r = rand.Reader
	}
	return &Resolver{rand: r}
}

// Resolve returns the request's voter ID and whether it was freshly minted.
// A well-formed cookie is echoed unchanged; a missing or malformed one is
// replaced, never rejected.
func (res *Resolver) Resolve(r *http.Request) (string, bool) {
	if c, err := r.Cookie(CookieName); err == nil && Valid(c.Value) {
		return c.Value, false
	}
	return res.Generate(), true
}

// Generate creates a new voter ID.
// If the configured source fails, the system CSPRNG is used instead.
func (res *Resolver) Generate() string {
	b := make([]byte, TokenBytes)
	if _, err := io.ReadFull(res.rand, b); err != nil {
		// crypto/rand.Read does not return errors on supported platforms
		rand.Read(b)
	}
	return hex.EncodeToString(b)
}

// Valid reports whether token is a well-formed voter ID:
// exactly 2*TokenBytes lowercase hex characters.
func Valid(token string) bool {
	if len(token) != 2*TokenBytes {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}

// SetCookie attaches the voter ID to the response.
// maxAge <= 0 produces a session cookie.
func SetCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		c.MaxAge = int(maxAge / time.Second)
		c.Expires = time.Now().Add(maxAge).UTC()
	}
	http.SetCookie(w, c)
}
