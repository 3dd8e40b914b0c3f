// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the vote front end.

# Public Routes

NewRouter serves a single endpoint for both the page and submissions:

	mux := router.NewRouter(handlers.NewVoteHandler(q, cfg))

	GET  /  - Show the voting page
	POST /  - Submit a vote (form field "vote")

Any other path is 404; other methods on / are 405.

# Operator Routes

NewOperatorRouter backs the optional METRICS_PORT listener, kept off the
public port:

	GET /metrics - Prometheus exposition
	GET /health  - 200 OK when the queue answers a ping, else 503
*/
package router
