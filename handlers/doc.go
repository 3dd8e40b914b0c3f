// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handler for the voting page.

# VoteHandler

VoteHandler takes the queue client and config, plus optional overrides:

	h := handlers.NewVoteHandler(q, cfg,
		handlers.WithMetrics(recorder),
		handlers.WithHostname("web-1"),
	)
	mux.HandleFunc("POST /{$}", h.Vote)

# Request Flow

Every request, GET or POST:

 1. Resolve the voter ID from the voter_id cookie (minting one if needed)
 2. POST only: read form field "vote"; anything other than an exact
    option label is ignored
 3. Valid vote: append {"voter_id", "vote"} to the queue, bounded by
    cfg.QueueTimeout
 4. Render the page with both labels, the hostname and the accepted vote
 5. Set the voter_id cookie and return 200

# Failures

Queue errors are logged with the queue target and dropped; the response is
unchanged and the page still marks the vote. Nothing is retried.

Form parse and render errors return 500.
*/
package handlers
