// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the value types shared by the vote path.

# Types

  - Options: the two configured labels (OPTION_A / OPTION_B)
  - VoteEvent: queue payload, {"voter_id": "...", "vote": "..."}
  - Ballot: render data for the voting page

# Validation

A choice counts as a vote only when it matches one of the labels exactly:

	opts := models.Options{A: "Cats", B: "Dogs"}
	opts.Valid("Cats") // true
	opts.Valid("cats") // false
	opts.Valid("")     // false
*/
package models
