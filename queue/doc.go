// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package queue forwards accepted votes to the downstream FIFO queue.

# Payload

Every backend stores the same JSON document per vote:

	{"voter_id": "00112233445566778899aabbccddeeff", "vote": "Cats"}

# Backends

  - RedisQueue: RPUSH onto a list (default key "votes") via go-redis
  - SQLQueue: INSERT into the vote_queue table (postgres or sqlite)

# Failures

Append returns *AppendError, which carries the queue Target for logging.
Nothing here retries; a failed append is reported once and the caller
decides what to do with it.

	if err := q.Append(ctx, event); err != nil {
		var appendErr *queue.AppendError
		errors.As(err, &appendErr)
		slog.Error("queue append failed", "queue", appendErr.Target, "error", appendErr.Err)
	}
*/
package queue
