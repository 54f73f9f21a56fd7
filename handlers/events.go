// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/danielhkuo/a-or-b/hub"
	"github.com/danielhkuo/a-or-b/middleware"
	"github.com/danielhkuo/a-or-b/models"
	"github.com/danielhkuo/a-or-b/store"
)

// EventsHandler serves server-sent event streams backed by the hub. Each
// connection registers a subscriber, receives a current-state snapshot
// immediately, then incremental events until it disconnects.
type EventsHandler struct {
	store *store.Store
	hub   *hub.Hub
}

func NewEventsHandler(st *store.Store, h *hub.Hub) *EventsHandler {
	return &EventsHandler{store: st, hub: h}
}

// HostEvents handles GET /events/host
func (h *EventsHandler) HostEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	ch, unsub := h.hub.SubscribeGlobal()
	defer unsub()

	writeSSEHeaders(w)

	// Snapshot first, so a new host view renders without waiting for a
	// change.
	snapshot := models.GamesResponse{Games: models.ProjectGames(h.store.ListGames())}
	writeSSE(w, hub.NewEvent(hub.EventGamesUpdated, snapshot))
	flusher.Flush()

	h.streamEvents(w, r, flusher, ch)
}

// SessionEvents handles GET /events/session/{id}
func (h *EventsHandler) SessionEvents(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	// Subscribe before reading the snapshot so no event can fall in the
	// gap between the two.
	ch, unsub := h.hub.SubscribeSession(sessionID)
	defer unsub()

	game, sess, err := h.store.FindSession(sessionID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSSEHeaders(w)
	writeSSE(w, sessionSnapshot(game, sess))
	flusher.Flush()

	h.streamEvents(w, r, flusher, ch)
}

func (h *EventsHandler) streamEvents(w http.ResponseWriter, r *http.Request, flusher http.Flusher, ch <-chan hub.Event) {
	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-ch:
			if !ok {
				// Hub shut down.
				return
			}
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

// sessionSnapshot builds the on-connect event for a session stream: the
// current tally for an active session, or the final tally for a closed
// one.
func sessionSnapshot(game *models.Game, sess *models.Session) hub.Event {
	if sess.Status == models.StatusClosed {
		tally := models.FinalTally{
			SessionID:  sess.ID,
			GameTitle:  game.Title,
			OptionA:    game.OptionA,
			OptionB:    game.OptionB,
			Votes:      sess.Votes,
			TotalVotes: sess.Votes.Total(),
		}
		if sess.ClosedAt != nil {
			tally.ClosedAt = *sess.ClosedAt
		}
		return hub.NewEvent(hub.EventSessionClosed, tally)
	}
	return hub.NewEvent(hub.EventVoteUpdated, models.TallyUpdate{
		SessionID:  sess.ID,
		Votes:      sess.Votes,
		TotalVotes: sess.Votes.Total(),
	})
}

func writeSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
}

func writeSSE(w io.Writer, ev hub.Event) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, ev.Data)
}
