// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import "time"

// Recorder receives vote-path measurements.
// Implementations must be safe for concurrent use.
type Recorder interface {
	// RecordVote counts a vote accepted for enqueueing. choice is always one
	// of the two configured labels, so label cardinality stays bounded.
	RecordVote(choice string)
	// RecordInvalidVote counts a submission whose value matched no option.
	RecordInvalidVote()
	// RecordEnqueue observes one append attempt and whether it failed.
	RecordEnqueue(d time.Duration, err error)
	// RecordIdentityIssued counts a freshly minted voter ID.
	RecordIdentityIssued()
}

// Nop discards everything. Used in tests and when metrics are disabled.
type Nop struct{}

var _ Recorder = Nop{}

func NewNop() Nop { return Nop{} }

func (Nop) RecordVote(string)                  {}
func (Nop) RecordInvalidVote()                 {}
func (Nop) RecordEnqueue(time.Duration, error) {}
func (Nop) RecordIdentityIssued()              {}
