// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/a-or-b/db"
	"github.com/danielhkuo/a-or-b/models"
	"github.com/danielhkuo/a-or-b/store"
)

// SetupTestDB creates a fresh in-memory sqlite database with the schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// An in-memory sqlite database exists per connection; keep the pool
	// at one so every query sees the same database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupStore creates a store backed by a fresh in-memory database
func SetupStore(t *testing.T) (*store.Store, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t)
	st, err := store.New(conn)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return st, conn
}

// CreateTestGame creates a game and returns it
func CreateTestGame(t *testing.T, st *store.Store, title, optionA, optionB string) *models.Game {
	t.Helper()

	game, err := st.CreateGame(title, optionA, optionB)
	if err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}
	return game
}

// StartTestSession starts a session on a game and returns it
func StartTestSession(t *testing.T, st *store.Store, gameID string) *models.Session {
	t.Helper()

	sess, err := st.StartSession(gameID)
	if err != nil {
		t.Fatalf("Failed to start test session: %v", err)
	}
	return sess
}

// CastTestVote records a vote and fails the test on error
func CastTestVote(t *testing.T, st *store.Store, sessionID, token, choice string) {
	t.Helper()

	if _, err := st.CastVote(sessionID, choice, token); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
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
