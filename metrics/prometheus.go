// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name
const DefaultNamespace = "quickly_vote"

// Prometheus implements Recorder with client_golang collectors.
type Prometheus struct {
	votes            *prometheus.CounterVec
	invalidVotes     prometheus.Counter
	enqueueFailures  prometheus.Counter
	enqueueDuration  prometheus.Histogram
	identitiesIssued prometheus.Counter
}

var _ Recorder = (*Prometheus)(nil)

// NewPrometheus creates and registers the vote-path collectors.
// A nil reg means prometheus.DefaultRegisterer; an empty namespace means
// DefaultNamespace. It panics if the collectors are already registered.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	p := &Prometheus{
		votes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_total",
			Help:      "Valid votes received, by choice.",
		}, []string{"choice"}),
		invalidVotes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_votes_total",
			Help:      "Submissions whose vote matched no configured option.",
		}),
		enqueueFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enqueue_failures_total",
			Help:      "Votes dropped because the queue append failed.",
		}),
		enqueueDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "enqueue_duration_seconds",
			Help:      "Queue append latency in seconds, successful or not.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms .. ~8s
		}),
		identitiesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identities_issued_total",
			Help:      "Voter IDs minted for clients without a valid cookie.",
		}),
	}

	reg.MustRegister(
		p.votes,
		p.invalidVotes,
		p.enqueueFailures,
		p.enqueueDuration,
		p.identitiesIssued,
	)

	return p
}

func (p *Prometheus) RecordVote(choice string) {
	p.votes.WithLabelValues(choice).Inc()
}

func (p *Prometheus) RecordInvalidVote() {
	p.invalidVotes.Inc()
}

func (p *Prometheus) RecordEnqueue(d time.Duration, err error) {
	p.enqueueDuration.Observe(d.Seconds())
	if err != nil {
		p.enqueueFailures.Inc()
	}
}

func (p *Prometheus) RecordIdentityIssued() {
	p.identitiesIssued.Inc()
}
