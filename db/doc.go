// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens SQL connections and creates the vote queue schema used by
the postgres and sqlite queue backends.

# Connections

	conn, err := db.Open(db.DialectPostgres, cfg.DatabaseURL)

The postgres dialect uses github.com/lib/pq; sqlite uses modernc.org/sqlite
(pure Go, no cgo) and is limited to one open connection.

# Schema Creation

	if err := db.CreateSchema(conn, db.DialectPostgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.

# Tables

  - vote_queue: one row per enqueued vote (queue name, JSON payload)

Consumers read rows for their queue name in ascending id order, which
gives the same FIFO semantics as a Redis list.
*/
package db
