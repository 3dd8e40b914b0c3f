// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote front end.

Quickly Vote shows anonymous visitors a two-option ballot, remembers their
last choice on the page, and pushes every vote onto a queue for a separate
worker to tally.

# Starting the Server

All settings have defaults, so a local Redis is enough:

	REDIS_HOST=localhost go run .

Or with flags:

	go run . -p 8080 -option-a Tabs -option-b Spaces -redis-host localhost

# Configuration

See package cliparse for the full list. The most common settings:

  - OPTION_A / OPTION_B: vote labels (default: Cats / Dogs)
  - REDIS_HOST, REDIS_PORT, REDIS_DB: queue location
  - REDIS_TIMEOUT: seconds before a queue append gives up (default: 5)
  - QUEUE_BACKEND: redis, postgres or sqlite (default: redis)
  - METRICS_PORT: enables /metrics and /health on a second port

# Architecture

  - identity: anonymous voter IDs in the voter_id cookie
  - handlers: the GET|POST / vote handler
  - queue: Redis list and SQL table queue clients
  - render: the HTML page
  - router: public and operator routes
  - middleware: request logging
  - metrics: Prometheus instrumentation
  - models: shared value types
  - db: SQL connections and schema
  - cliparse: configuration parsing

A queue outage never fails a request: the vote is logged as dropped and the
visitor still gets their page.
*/
package main
