// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/middleware"
)

// healthTimeout bounds the queue ping behind GET /health
const healthTimeout = 2 * time.Second

// Pinger reports whether the queue is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter returns the public mux. It serves exactly one route:
// GET|POST / (HEAD is served by the GET pattern).
func NewRouter(voteHandler *handlers.VoteHandler) *http.ServeMux {
	mux := http.NewServeMux()

	vote := middleware.WithLogging(voteHandler.Vote)
	mux.HandleFunc("GET /{$}", vote)
	mux.HandleFunc("POST /{$}", vote)

	return mux
}

// NewOperatorRouter returns the mux for the metrics listener
func NewOperatorRouter(gatherer prometheus.Gatherer, queue Pinger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := queue.Ping(ctx); err != nil {
			slog.Warn("health check failed", "error", err)
			http.Error(w, "queue unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return mux
}
