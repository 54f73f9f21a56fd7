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

type GameHandler struct {
	store *store.Store
	hub   *hub.Hub
}

func NewGameHandler(st *store.Store, h *hub.Hub) *GameHandler {
	return &GameHandler{store: st, hub: h}
}

// ListGames handles GET /api/games
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	views := models.ProjectGames(h.store.ListGames())
	middleware.JSONResponse(w, http.StatusOK, models.GamesResponse{Games: views})
}

// CreateGame handles POST /api/games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGameRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	publishMu.Lock()
	game, err := h.store.CreateGame(req.Title, req.OptionA, req.OptionB)
	if err != nil {
		publishMu.Unlock()
		writeDomainError(w, err)
		return
	}
	publishGames(h.hub, h.store)
	publishMu.Unlock()

	slog.Info("game created", "game_id", game.ID, "title", game.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateGameResponse{
		Game: models.ProjectGame(game),
	})
}

// DeleteGame handles DELETE /api/games/{id}
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	publishMu.Lock()
	if err := h.store.DeleteGame(gameID); err != nil {
		publishMu.Unlock()
		writeDomainError(w, err)
		return
	}
	publishGames(h.hub, h.store)
	publishMu.Unlock()

	slog.Info("game deleted", "game_id", gameID)

	middleware.JSONResponse(w, http.StatusOK, models.AckResponse{OK: true})
}
