// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSchema_SQLiteIdempotent(t *testing.T) {
	conn, err := Open(DialectSQLite, filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, CreateSchema(conn, DialectSQLite))
	require.NoError(t, CreateSchema(conn, DialectSQLite), "second call should be a no-op")

	_, err = conn.Exec(`INSERT INTO vote_queue (queue, payload) VALUES ($1, $2)`, "votes", `{"voter_id":"a","vote":"Cats"}`)
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM vote_queue`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestUnsupportedDialect(t *testing.T) {
	_, err := Open("mysql", "whatever")
	assert.Error(t, err)

	conn, err := Open(DialectSQLite, filepath.Join(t.TempDir(), "q.db"))
	require.NoError(t, err)
	defer conn.Close()
	assert.Error(t, CreateSchema(conn, "mysql"))
}
