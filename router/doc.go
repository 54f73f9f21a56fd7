// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method and pattern matching on the standard ServeMux:

	GET    /health                      liveness probe
	GET    /api/games                   list games (public projection)
	POST   /api/games                   create a game
	DELETE /api/games/{id}              delete a game and its sessions
	POST   /api/games/{id}/sessions     start a voting session
	GET    /api/sessions/{id}           fetch one session with its game
	POST   /api/sessions/{id}/vote      cast a vote
	POST   /api/sessions/{id}/close     close a session, revealing the tally
	DELETE /api/sessions/{id}           delete a session
	GET    /events/host                 SSE: global game list changes
	GET    /events/session/{id}         SSE: one session's vote/close events
	GET    /ws/host                     websocket twin of /events/host
	GET    /ws/session/{id}             websocket twin of /events/session/{id}

API handlers are wrapped with request logging; the streaming endpoints are
not, since a single long-lived connection would skew duration logs.
*/
package router
