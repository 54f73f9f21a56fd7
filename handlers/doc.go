// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Groups

  - GameHandler: list, create, delete games
  - SessionHandler: start, fetch, close, delete sessions
  - VoteHandler: cast votes
  - EventsHandler: SSE subscription streams (global and per-session)

Each handler validates transport concerns (path params, JSON bodies),
delegates domain decisions to the store, and publishes hub notifications
only after a mutation has persisted successfully. Notification never
happens for a failed operation.

# Error Mapping

Store error categories map to HTTP statuses:

	store.ErrValidation -> 400 Bad Request
	store.ErrNotFound   -> 404 Not Found
	store.ErrConflict   -> 409 Conflict

Everything else is a 500 with a generic message.

# Visibility

Responses never serialize domain entities directly; they go through the
projections in models, which hide vote tallies for active sessions.
*/
package handlers
