// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"time"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/identity"
	"github.com/danielhkuo/quickly-vote/metrics"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/queue"
	"github.com/danielhkuo/quickly-vote/render"
)

// maxFormBytes caps the POST body; a vote form is a few dozen bytes
const maxFormBytes = 64 << 10

const defaultQueueTimeout = 5 * time.Second

// lookupHostname is swapped out in tests
var lookupHostname = os.Hostname

// VoteHandler serves the vote page and forwards valid votes to a queue.
// It holds no per-request state and is safe for concurrent use.
type VoteHandler struct {
	queue    queue.Appender
	opts     models.Options
	timeout  time.Duration
	maxAge   time.Duration
	hostname string

	resolver *identity.Resolver
	renderer render.Renderer
	metrics  metrics.Recorder
	logger   *slog.Logger
}

// Option customizes a VoteHandler
type Option func(*VoteHandler)

// WithRenderer replaces the embedded page template
func WithRenderer(r render.Renderer) Option {
	return func(h *VoteHandler) { h.renderer = r }
}

// WithResolver replaces the crypto/rand identity resolver
func WithResolver(r *identity.Resolver) Option {
	return func(h *VoteHandler) { h.resolver = r }
}

// WithMetrics records votes and queue appends on m
func WithMetrics(m metrics.Recorder) Option {
	return func(h *VoteHandler) { h.metrics = m }
}

// WithLogger replaces slog.Default
func WithLogger(l *slog.Logger) Option {
	return func(h *VoteHandler) { h.logger = l }
}

// WithHostname overrides the instance name shown on the page
func WithHostname(name string) Option {
	return func(h *VoteHandler) { h.hostname = name }
}

// NewVoteHandler builds the handler for GET|POST /.
// q receives every valid vote and must be safe for concurrent use.
func NewVoteHandler(q queue.Appender, cfg cliparse.Config, opts ...Option) *VoteHandler {
	h := &VoteHandler{
		queue:   q,
		opts:    cfg.Options(),
		timeout: cfg.QueueTimeout,
		maxAge:  cfg.CookieMaxAge,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.logger == nil {
		h.logger = slog.Default()
	}
	if h.timeout <= 0 {
		h.timeout = defaultQueueTimeout
	}
	if h.hostname == "" {
		name, err := lookupHostname()
		if err != nil {
			h.logger.Warn("failed to read hostname", "error", err)
		}
		h.hostname = name
	}
	if h.resolver == nil {
		h.resolver = identity.NewResolver(nil)
	}
	if h.renderer == nil {
		h.renderer = render.NewTemplateRenderer()
	}
	if h.metrics == nil {
		h.metrics = metrics.NewNop()
	}
	return h
}

// Vote handles GET|POST /
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	voterID, isNew := h.resolver.Resolve(r)
	if isNew {
		h.metrics.RecordIdentityIssued()
	}

	var vote string
	if r.Method == http.MethodPost {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := h.parseForm(r); err != nil {
			h.logger.Error("failed to parse vote form", "error", err)
			http.Error(w, "Failed to parse form", http.StatusInternalServerError)
			return
		}

		choice := r.PostForm.Get("vote")
		switch {
		case h.opts.Valid(choice):
			vote = choice
			h.metrics.RecordVote(vote)
			h.logger.Info("received vote", "vote", vote, "voter_id", voterID)
			h.enqueue(r.Context(), models.VoteEvent{VoterID: voterID, Vote: vote})
		case choice != "":
			h.metrics.RecordInvalidVote()
			h.logger.Debug("ignoring invalid vote", "vote", choice, "voter_id", voterID)
		}
	}

	// Render before touching the response so a template error is a clean 500.
	// The page shows the vote even if the append failed.
	var body bytes.Buffer
	err := h.renderer.Render(&body, models.Ballot{
		OptionA:  h.opts.A,
		OptionB:  h.opts.B,
		Hostname: h.hostname,
		Vote:     vote,
	})
	if err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	identity.SetCookie(w, voterID, h.maxAge)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := body.WriteTo(w); err != nil {
		h.logger.Debug("failed to write response", "error", err)
	}
}

// parseForm fills r.PostForm from urlencoded or multipart bodies
func (h *VoteHandler) parseForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		return r.ParseMultipartForm(maxFormBytes)
	case "application/x-www-form-urlencoded":
	default:
		h.logger.Debug("unsupported form content type", "content_type", r.Header.Get("Content-Type"))
	}
	return r.ParseForm()
}

// enqueue hands the event to the queue. Failures are logged and counted,
// never returned: the vote is dropped and the page is still served.
func (h *VoteHandler) enqueue(ctx context.Context, event models.VoteEvent) {
	// A client hanging up must not abort an append already under way
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.timeout)
	defer cancel()

	start := time.Now()
	err := h.queue.Append(ctx, event)
	h.metrics.RecordEnqueue(time.Since(start), err)
	if err == nil {
		return
	}

	target := h.queue.Target()
	var appendErr *queue.AppendError
	if errors.As(err, &appendErr) {
		target = appendErr.Target
		err = appendErr.Err
	}
	h.logger.Error("queue append failed, vote dropped",
		"queue", target,
		"voter_id", event.VoterID,
		"vote", event.Vote,
		"error", err,
	)
}
