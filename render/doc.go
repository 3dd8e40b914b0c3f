// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package render produces the voting page from a models.Ballot.
// The page is a pure function of the two labels, the serving hostname and
// the last accepted vote; labels are HTML-escaped by html/template.
package render
