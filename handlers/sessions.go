// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/a-or-b/hub"
	"github.com/danielhkuo/a-or-b/middleware"
	"github.com/danielhkuo/a-or-b/models"
	"github.com/danielhkuo/a-or-b/store"
)

type SessionHandler struct {
	store *store.Store
	hub   *hub.Hub
}

func NewSessionHandler(st *store.Store, h *hub.Hub) *SessionHandler {
	return &SessionHandler{store: st, hub: h}
}

// StartSession handles POST /api/games/{id}/sessions
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	publishMu.Lock()
	sess, err := h.store.StartSession(gameID)
	if err != nil {
		publishMu.Unlock()
		writeDomainError(w, err)
		return
	}
	publishGames(h.hub, h.store)
	publishMu.Unlock()

	slog.Info("session started", "game_id", gameID, "session_id", sess.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.StartSessionResponse{
		Session: models.ProjectSession(sess),
	})
}

// GetSession handles GET /api/sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	game, sess, err := h.store.FindSession(sessionID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionDetailResponse{
		Game:    models.SummarizeGame(game),
		Session: models.ProjectSession(sess),
	})
}

// CloseSession handles POST /api/sessions/{id}/close
func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	publishMu.Lock()
	tally, err := h.store.CloseSession(sessionID)
	if err != nil {
		publishMu.Unlock()
		writeDomainError(w, err)
		return
	}
	h.hub.PublishSession(sessionID, hub.NewEvent(hub.EventSessionClosed, tally))
	publishGames(h.hub, h.store)
	publishMu.Unlock()

	slog.Info("session closed",
		"session_id", sessionID,
		"votes_a", tally.Votes.A,
		"votes_b", tally.Votes.B,
	)

	middleware.JSONResponse(w, http.StatusOK, tally)
}

// DeleteSession handles DELETE /api/sessions/{id}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	publishMu.Lock()
	if err := h.store.DeleteSession(sessionID); err != nil {
		publishMu.Unlock()
		writeDomainError(w, err)
		return
	}
	publishGames(h.hub, h.store)
	publishMu.Unlock()

	slog.Info("session deleted", "session_id", sessionID)

	middleware.JSONResponse(w, http.StatusOK, models.AckResponse{OK: true})
}
