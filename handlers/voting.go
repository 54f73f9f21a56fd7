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

type VoteHandler struct {
	store *store.Store
	hub   *hub.Hub
}

func NewVoteHandler(st *store.Store, h *hub.Hub) *VoteHandler {
	return &VoteHandler{store: st, hub: h}
}

// CastVote handles POST /api/sessions/{id}/vote
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	publishMu.Lock()
	tally, err := h.store.CastVote(sessionID, req.Choice, req.Token)
	if err != nil {
		publishMu.Unlock()
		writeDomainError(w, err)
		return
	}
	h.hub.PublishSession(sessionID, hub.NewEvent(hub.EventVoteUpdated, tally))
	publishGames(h.hub, h.store)
	publishMu.Unlock()

	slog.Info("vote cast",
		"session_id", sessionID,
		"choice", req.Choice,
		"total_votes", tally.TotalVotes,
	)

	middleware.JSONResponse(w, http.StatusOK, models.AckResponse{OK: true})
}
