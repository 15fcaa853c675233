// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/pollbot/cliparse"
	"github.com/danielhkuo/pollbot/db"
	"github.com/danielhkuo/pollbot/store"
)

// SetupTestStore opens a fresh SQLite-backed store in a temp directory
func SetupTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, "file:"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	s, err := store.NewSQLStore(conn, db.TypeSQLite)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return s
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:test.db",
		DatabaseType: db.TypeSQLite,
		SlackAPIURL:  "https://slack.invalid/api/",
		StoreTimeout: 2 * time.Second,
		NotifyVotes:  true,
		LogLevel:     "info",
	}
}

// MakeCommandRequest builds a slash-command POST as Slack sends it
func MakeCommandRequest(text, userName, channelID string) *http.Request {
	form := url.Values{}
	form.Set("text", text)
	form.Set("user_name", userName)
	form.Set("user_id", "U"+strings.ToUpper(userName))
	form.Set("channel_id", channelID)
	form.Set("command", "/poll")

	req := httptest.NewRequest("POST", "/slack/commands", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
