// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics instruments the vote path.

	reg := prometheus.NewRegistry()
	rec := metrics.NewPrometheus(reg, "")

Exposed series (namespace quickly_vote):

  - votes_total{choice}
  - invalid_votes_total
  - enqueue_failures_total
  - enqueue_duration_seconds
  - identities_issued_total

Use metrics.NewNop() when no registry is wanted.
*/
package metrics
