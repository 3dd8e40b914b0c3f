// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Default option labels
const (
	DefaultOptionA = "Cats"
	DefaultOptionB = "Dogs"
)

// Options holds the two configured, mutually exclusive vote labels.
type Options struct {
	A string
	B string
}

// Valid reports whether choice is exactly one of the configured labels.
// The empty string is never valid.
func (o Options) Valid(choice string) bool {
	if choice == "" {
		return false
	}
	return choice == o.A || choice == o.B
}

// VoteEvent is one accepted vote as handed to the queue.
// Field names are the wire contract read by the downstream worker.
type VoteEvent struct {
	VoterID string `json:"voter_id"`
	Vote    string `json:"vote"`
}

// Ballot is the per-request data the page is rendered from.
// Vote is empty when no vote was accepted for display.
type Ballot struct {
	OptionA  string
	OptionB  string
	Hostname string
	Vote     string
}

// Selected reports whether the page should mark option as the last choice.
func (b Ballot) Selected(option string) bool {
	return b.Vote != "" && b.Vote == option
}
