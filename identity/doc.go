// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity assigns anonymous voters a stable ID held in a cookie.

# Tokens

A voter ID is 16 random bytes, hex encoded (32 lowercase characters):

	res := identity.NewResolver(nil) // crypto/rand
	id, isNew := res.Resolve(r)

The server never stores IDs. The client keeps the voter_id cookie and sends
it back; a well-formed value is echoed unchanged, anything else is replaced.

# Entropy

Tokens carry 128 bits. With n clients the chance that any two fresh tokens
collide is about n²/2^129; for a billion clients that is roughly 1.5e-21.

# Cookie

	identity.SetCookie(w, id, identity.DefaultMaxAge)

The cookie is HttpOnly, SameSite=Lax, scoped to "/", and lives ten years by
default.
*/
package identity
