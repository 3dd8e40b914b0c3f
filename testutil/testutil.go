// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/identity"
	"github.com/danielhkuo/quickly-vote/models"
)

// TestHostname is the instance name handlers render in tests
const TestHostname = "test-host"

// FakeQueue records appended events in memory. Set Err to make every
// append fail, or Delay to make appends block until ctx is done.
type FakeQueue struct {
	mu     sync.Mutex
	events []models.VoteEvent

	Err   error
	Delay time.Duration
}

func (q *FakeQueue) Append(ctx context.Context, event models.VoteEvent) error {
	if q.Delay > 0 {
		select {
		case <-time.After(q.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if q.Err != nil {
		return q.Err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, event)
	return nil
}

func (q *FakeQueue) Target() string { return "fake#votes" }

func (q *FakeQueue) Ping(ctx context.Context) error { return q.Err }

func (q *FakeQueue) Close() error { return nil }

// Events returns a copy of everything appended so far
func (q *FakeQueue) Events() []models.VoteEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]models.VoteEvent(nil), q.events...)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		OptionA:      "Cats",
		OptionB:      "Dogs",
		QueueBackend: cliparse.BackendRedis,
		QueueKey:     "votes",
		QueueTimeout: time.Second,
		RedisHost:    "localhost",
		RedisPort:    6379,
		CookieMaxAge: identity.DefaultMaxAge,
	}
}

// SetupTestDB creates a fresh sqlite database with the queue schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DialectSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// MakeRequest creates a GET test request, or a form POST when form is non-nil.
// A non-empty voterID is sent as the voter_id cookie.
func MakeRequest(method string, form url.Values, voterID string) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}

	if voterID != "" {
		req.AddCookie(&http.Cookie{Name: identity.CookieName, Value: voterID})
	}

	return req
}

// VoteForm builds the POST body for a vote
func VoteForm(vote string) url.Values {
	return url.Values{"vote": {vote}}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// VoterCookie returns the voter_id cookie set on the response
func VoterCookie(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	id := FindVoterCookie(w)
	if id == "" {
		t.Fatalf("Response did not set the %s cookie", identity.CookieName)
	}
	return id
}

// FindVoterCookie is VoterCookie for goroutines: it returns "" when the
// cookie is missing instead of failing the test.
func FindVoterCookie(w *httptest.ResponseRecorder) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == identity.CookieName {
			return c.Value
		}
	}
	return ""
}
