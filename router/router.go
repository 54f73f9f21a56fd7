// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/a-or-b/handlers"
	"github.com/danielhkuo/a-or-b/hub"
	"github.com/danielhkuo/a-or-b/middleware"
	"github.com/danielhkuo/a-or-b/store"
	"github.com/danielhkuo/a-or-b/ws"
)

func NewRouter(st *store.Store, h *hub.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(st, h)
	sessionHandler := handlers.NewSessionHandler(st, h)
	voteHandler := handlers.NewVoteHandler(st, h)
	eventsHandler := handlers.NewEventsHandler(st, h)
	wsHandler := ws.NewHandler(st, h)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Game management
	mux.HandleFunc("GET /api/games", middleware.WithLogging(gameHandler.ListGames))
	mux.HandleFunc("POST /api/games", middleware.WithLogging(gameHandler.CreateGame))
	mux.HandleFunc("DELETE /api/games/{id}", middleware.WithLogging(gameHandler.DeleteGame))
	mux.HandleFunc("POST /api/games/{id}/sessions", middleware.WithLogging(sessionHandler.StartSession))

	// Session operations
	mux.HandleFunc("GET /api/sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("POST /api/sessions/{id}/vote", middleware.WithLogging(voteHandler.CastVote))
	mux.HandleFunc("POST /api/sessions/{id}/close", middleware.WithLogging(sessionHandler.CloseSession))
	mux.HandleFunc("DELETE /api/sessions/{id}", middleware.WithLogging(sessionHandler.DeleteSession))

	// Streaming subscriptions (long-lived, not wrapped in request logging)
	mux.HandleFunc("GET /events/host", eventsHandler.HostEvents)
	mux.HandleFunc("GET /events/session/{id}", eventsHandler.SessionEvents)
	mux.HandleFunc("GET /ws/host", wsHandler.HostSocket)
	mux.HandleFunc("GET /ws/session/{id}", wsHandler.SessionSocket)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("a-or-b API v1"))
	})

	return mux
}
