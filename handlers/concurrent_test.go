// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/a-or-b/hub"
	"github.com/danielhkuo/a-or-b/models"
	"github.com/danielhkuo/a-or-b/store"
	"github.com/danielhkuo/a-or-b/testutil"
)

func castVoteConcurrent(vh *VoteHandler, sessionID, token, choice string) *httptest.ResponseRecorder {
	req := testutil.MakeRequest("POST", "/api/sessions/"+sessionID+"/vote",
		models.VoteRequest{Choice: choice, Token: token}, nil)
	req.SetPathValue("id", sessionID)
	w := httptest.NewRecorder()
	vh.CastVote(w, req)
	return w
}

// TestConcurrentVotes verifies that simultaneous votes from distinct
// participants all land and the tally stays consistent
func TestConcurrentVotes(t *testing.T) {
	st, conn := testutil.SetupStore(t)
	defer conn.Close()

	h := hub.New()
	defer h.Close()
	voteHandler := NewVoteHandler(st, h)

	game := testutil.CreateTestGame(t, st, "Coffee vs Tea", "Coffee", "Tea")
	sess := testutil.StartTestSession(t, st, game.ID)

	numVoters := 20
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			choice := models.ChoiceA
			if idx%2 == 1 {
				choice = models.ChoiceB
			}
			w := castVoteConcurrent(voteHandler, sess.ID, fmt.Sprintf("voter-%d", idx), choice)
			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	_, got, err := st.FindSession(sess.ID)
	if err != nil {
		t.Fatalf("FindSession failed: %v", err)
	}
	if got.Votes.Total() != numVoters {
		t.Errorf("Expected tally total %d, got %d", numVoters, got.Votes.Total())
	}
	if len(got.ParticipantTokens) != numVoters {
		t.Errorf("Expected %d recorded tokens, got %d", numVoters, len(got.ParticipantTokens))
	}
	if got.Votes.A != numVoters/2 || got.Votes.B != numVoters/2 {
		t.Errorf("Unexpected split: A=%d B=%d", got.Votes.A, got.Votes.B)
	}
}

// TestConcurrentVotes_EventOrder verifies that a subscriber observes tally
// events in the order the store counted the votes: totals climb one at a
// time and never run backwards, even when the votes race each other
func TestConcurrentVotes_EventOrder(t *testing.T) {
	st, conn := testutil.SetupStore(t)
	defer conn.Close()

	h := hub.New()
	defer h.Close()
	voteHandler := NewVoteHandler(st, h)

	game := testutil.CreateTestGame(t, st, "Coffee vs Tea", "Coffee", "Tea")
	sess := testutil.StartTestSession(t, st, game.ID)

	ch, unsub := h.SubscribeSession(sess.ID)
	defer unsub()

	// Stay within the subscriber buffer so no event is dropped
	numVoters := 10
	var wg sync.WaitGroup
	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			w := castVoteConcurrent(voteHandler, sess.ID, fmt.Sprintf("voter-%d", idx), models.ChoiceA)
			if w.Code != http.StatusOK {
				t.Errorf("Vote %d failed: %d - %s", idx, w.Code, w.Body.String())
			}
		}(i)
	}
	wg.Wait()

	for want := 1; want <= numVoters; want++ {
		select {
		case ev := <-ch:
			if ev.Name != hub.EventVoteUpdated {
				t.Fatalf("Expected %q, got %q", hub.EventVoteUpdated, ev.Name)
			}
			var tally models.TallyUpdate
			if err := json.Unmarshal(ev.Data, &tally); err != nil {
				t.Fatalf("Failed to decode tally: %v", err)
			}
			if tally.TotalVotes != want {
				t.Fatalf("Expected event total %d, got %d", want, tally.TotalVotes)
			}
		case <-time.After(time.Second):
			t.Fatalf("Timed out waiting for event %d", want)
		}
	}
}

// TestConcurrentVotesSameToken verifies that when one participant races
// themselves, exactly one vote is counted
func TestConcurrentVotesSameToken(t *testing.T) {
	st, conn := testutil.SetupStore(t)
	defer conn.Close()

	h := hub.New()
	defer h.Close()
	voteHandler := NewVoteHandler(st, h)

	game := testutil.CreateTestGame(t, st, "Coffee vs Tea", "Coffee", "Tea")
	sess := testutil.StartTestSession(t, st, game.ID)

	numAttempts := 10
	var successCount atomic.Int32
	var conflictCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			choice := models.ChoiceA
			if idx%2 == 1 {
				choice = models.ChoiceB
			}
			w := castVoteConcurrent(voteHandler, sess.ID, "contested-token", choice)
			switch w.Code {
			case http.StatusOK:
				successCount.Add(1)
			case http.StatusConflict:
				conflictCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful vote, got %d", successCount.Load())
	}
	if int(conflictCount.Load()) != numAttempts-1 {
		t.Errorf("Expected %d conflicts, got %d", numAttempts-1, conflictCount.Load())
	}

	_, got, err := st.FindSession(sess.ID)
	if err != nil {
		t.Fatalf("FindSession failed: %v", err)
	}
	if got.Votes.Total() != 1 {
		t.Errorf("Expected tally total 1, got %d", got.Votes.Total())
	}
}

// TestConcurrentSessionStarts verifies that racing starts on one game yield
// exactly one active session
func TestConcurrentSessionStarts(t *testing.T) {
	st, conn := testutil.SetupStore(t)
	defer conn.Close()

	h := hub.New()
	defer h.Close()
	sessionHandler := NewSessionHandler(st, h)

	game := testutil.CreateTestGame(t, st, "Coffee vs Tea", "Coffee", "Tea")

	numAttempts := 5
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/games/"+game.ID+"/sessions", nil, nil)
			req.SetPathValue("id", game.ID)
			w := httptest.NewRecorder()
			sessionHandler.StartSession(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful start, got %d", successCount.Load())
	}

	games := st.ListGames()
	if len(games) != 1 || len(games[0].Sessions) != 1 {
		t.Fatalf("Expected a single session on the game")
	}
	if games[0].Sessions[0].Status != models.StatusActive {
		t.Errorf("Expected the surviving session to be active")
	}
}

// TestConcurrentCloseAndVote verifies that racing a close against votes never
// corrupts the final tally: every counted vote carries a recorded token.
func TestConcurrentCloseAndVote(t *testing.T) {
	st, conn := testutil.SetupStore(t)
	defer conn.Close()

	h := hub.New()
	defer h.Close()
	voteHandler := NewVoteHandler(st, h)
	sessionHandler := NewSessionHandler(st, h)

	game := testutil.CreateTestGame(t, st, "Coffee vs Tea", "Coffee", "Tea")
	sess := testutil.StartTestSession(t, st, game.ID)

	numVoters := 10
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			// Votes landing after the close are rejected with 409; both
			// outcomes are fine here
			castVoteConcurrent(voteHandler, sess.ID, fmt.Sprintf("racer-%d", idx), models.ChoiceA)
		}(i)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		req := testutil.MakeRequest("POST", "/api/sessions/"+sess.ID+"/close", nil, nil)
		req.SetPathValue("id", sess.ID)
		w := httptest.NewRecorder()
		sessionHandler.CloseSession(w, req)
	}()

	wg.Wait()

	_, got, err := st.FindSession(sess.ID)
	if err != nil {
		t.Fatalf("FindSession failed: %v", err)
	}
	if got.Status != models.StatusClosed {
		t.Errorf("Expected session to be closed")
	}
	if got.Votes.Total() != len(got.ParticipantTokens) {
		t.Errorf("Tally total %d does not match %d recorded tokens",
			got.Votes.Total(), len(got.ParticipantTokens))
	}

	// The persisted snapshot agrees with memory
	reloaded, err := store.New(conn)
	if err != nil {
		t.Fatalf("Failed to reload store: %v", err)
	}
	_, persisted, err := reloaded.FindSession(sess.ID)
	if err != nil {
		t.Fatalf("FindSession after reload failed: %v", err)
	}
	if persisted.Votes.Total() != got.Votes.Total() {
		t.Errorf("Persisted total %d differs from in-memory total %d",
			persisted.Votes.Total(), got.Votes.Total())
	}
}
