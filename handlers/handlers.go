// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/danielhkuo/a-or-b/hub"
	"github.com/danielhkuo/a-or-b/middleware"
	"github.com/danielhkuo/a-or-b/models"
	"github.com/danielhkuo/a-or-b/store"
)

// publishMu serializes each mutate-then-publish pair. The store orders the
// mutations themselves, but without this lock a later vote's event could
// reach the hub before an earlier one's and a live tally would briefly run
// backwards.
var publishMu sync.Mutex

// writeDomainError translates a store error category to an HTTP status.
// Anything outside the taxonomy is an internal failure and is logged
// without leaking detail to the client.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

// publishGames pushes the current projected game list to every global
// subscriber. Called only after a mutation has persisted successfully.
func publishGames(h *hub.Hub, st *store.Store) {
	payload := models.GamesResponse{Games: models.ProjectGames(st.ListGames())}
	h.PublishGlobal(hub.NewEvent(hub.EventGamesUpdated, payload))
}
