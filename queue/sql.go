// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/quickly-vote/models"
)

// SQLQueue appends votes as rows of the vote_queue table.
// Rows for one queue name are consumed in id order.
type SQLQueue struct {
	db     *sql.DB
	name   string
	target string
}

// NewSQLQueue wraps an open connection. The schema must already exist
// (see db.CreateSchema). dialect is only used in Target.
func NewSQLQueue(db *sql.DB, dialect, name string) *SQLQueue {
	return &SQLQueue{
		db:     db,
		name:   name,
		target: fmt.Sprintf("%s#vote_queue/%s", dialect, name),
	}
}

// Append inserts the JSON-encoded event
func (q *SQLQueue) Append(ctx context.Context, event models.VoteEvent) error {
	payload, err := Encode(event)
	if err != nil {
		return &AppendError{Target: q.target, Err: err}
	}
	_, err = q.db.ExecContext(ctx, `
		INSERT INTO vote_queue (queue, payload)
		VALUES ($1, $2)
	`, q.name, string(payload))
	if err != nil {
		return &AppendError{Target: q.target, Err: err}
	}
	return nil
}

func (q *SQLQueue) Target() string {
	return q.target
}

func (q *SQLQueue) Ping(ctx context.Context) error {
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

func (q *SQLQueue) Close() error {
	return q.db.Close()
}
