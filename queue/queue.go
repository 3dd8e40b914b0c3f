// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/danielhkuo/quickly-vote/models"
)

// Appender is the append side of the downstream vote queue.
// Implementations must be safe for concurrent use.
type Appender interface {
	// Append adds one event to the tail of the queue. It must give up once
	// ctx is done.
	Append(ctx context.Context, event models.VoteEvent) error
	// Target names the queue for logs, e.g. "redis://redis:6379/0#votes".
	Target() string
}

// Queue is an Appender that can also be health-checked and closed
type Queue interface {
	Appender
	Ping(ctx context.Context) error
	Close() error
}

// AppendError reports a failed append and the queue it was aimed at
type AppendError struct {
	Target string
	Err    error
}

func (e *AppendError) Error() string {
	return fmt.Sprintf("append to %s: %v", e.Target, e.Err)
}

func (e *AppendError) Unwrap() error {
	return e.Err
}

// Encode serializes an event into the JSON payload stored on the queue
func Encode(event models.VoteEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode vote event: %w", err)
	}
	return data, nil
}
