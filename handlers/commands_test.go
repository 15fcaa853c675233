// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/pollbot/auth"
	"github.com/danielhkuo/pollbot/polls"
	"github.com/danielhkuo/pollbot/testutil"
)

func newTestCommandHandler(t *testing.T, secret string) (*CommandHandler, *recordingNotifier) {
	t.Helper()
	cfg := testutil.GetTestConfig()
	cfg.SlackSigningSecret = secret

	n := &recordingNotifier{}
	engine := polls.NewEngine(testutil.SetupTestStore(t))
	d := NewDispatcher(engine, n, cfg.StoreTimeout, cfg.NotifyVotes)
	return NewCommandHandler(d, cfg), n
}

func TestHandleCommand(t *testing.T) {
	handler, n := newTestCommandHandler(t, "")

	tests := []struct {
		name     string
		text     string
		user     string
		wantBody string
	}{
		{"create", "new What day is it?, Monday, Tuesday", "alice", ReplyPollGenerated},
		{"vote", "vote 0 2", "bob", ReplyVoted},
		{"show", "show 0", "carol", ReplyPollFound},
		{"missing poll", "vote 12 1", "bob", ReplyInvalidPollID},
		{"unknown verb", "close 0", "bob", Usage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeCommandRequest(tt.text, tt.user, "C1")
			w := httptest.NewRecorder()

			handler.HandleCommand(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			if w.Body.String() != tt.wantBody {
				t.Errorf("Expected body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}

	if got := n.count(); got != 3 {
		t.Errorf("Expected 3 notifications, got %d", got)
	}
}

func signedRequest(secret string, ts time.Time, tamper bool) *http.Request {
	req := testutil.MakeCommandRequest("new Q, A, B", "alice", "C1")
	body, _ := io.ReadAll(req.Body)
	timestamp := strconv.FormatInt(ts.Unix(), 10)
	sig := auth.ComputeSignature(secret, timestamp, body)

	if tamper {
		body = []byte(strings.Replace(string(body), "alice", "mallory", 1))
	}

	signed := httptest.NewRequest("POST", "/slack/commands", strings.NewReader(string(body)))
	signed.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signed.Header.Set(auth.HeaderTimestamp, timestamp)
	signed.Header.Set(auth.HeaderSignature, sig)
	return signed
}

func TestHandleCommand_Signature(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name       string
		req        *http.Request
		wantStatus int
		wantBody   string
	}{
		{"valid", signedRequest("s3cret", now, false), http.StatusOK, ReplyPollGenerated},
		{"wrong secret", signedRequest("other", now, false), http.StatusUnauthorized, "invalid signature"},
		{"tampered", signedRequest("s3cret", now, true), http.StatusUnauthorized, "invalid signature"},
		{"stale", signedRequest("s3cret", now.Add(-time.Hour), false), http.StatusUnauthorized, "invalid signature"},
		{"unsigned", testutil.MakeCommandRequest("show 0", "bob", "C1"), http.StatusUnauthorized, "invalid signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, n := newTestCommandHandler(t, "s3cret")
			handler.now = func() time.Time { return now }
			w := httptest.NewRecorder()

			handler.HandleCommand(w, tt.req)

			testutil.AssertStatus(t, w, tt.wantStatus)
			if w.Body.String() != tt.wantBody {
				t.Errorf("Expected body %q, got %q", tt.wantBody, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK && n.count() != 0 {
				t.Error("Rejected request must not reach the dispatcher")
			}
		})
	}
}

func TestHandleCommand_BodyTooLarge(t *testing.T) {
	handler, _ := newTestCommandHandler(t, "")

	big := "text=" + strings.Repeat("a", maxCommandBody+1)
	req := httptest.NewRequest("POST", "/slack/commands", strings.NewReader(big))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler.HandleCommand(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
