// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the A-or-B game server.

A-or-B is a live audience polling game: a host creates a game with two
options, starts a session, participants cast one vote each, and the host
closes the session to reveal the result. Hosts, participants, and public
displays follow along over SSE or websocket streams.

# Starting the Server

The server runs against a local sqlite file by default:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

# Configuration

Optional settings (flags or env, flags win):

  - PORT (-p): server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): sqlite file path (default: aorb.db) or postgres
    connection string

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: in-memory game collection, session state machine, snapshot
    persistence
  - hub: pub/sub fan-out of change events to subscribers
  - handlers: HTTP request handlers (games, sessions, voting, SSE events)
  - ws: websocket subscription transport
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain types and projections
  - db: database connection and snapshot IO
  - ident: random id generation
  - cliparse: configuration parsing

Results visibility is the load-bearing rule: while a session is active,
every external representation hides vote tallies and exposes only the
participant count; tallies are revealed when the session closes.

See package documentation for each component.
*/
package main
