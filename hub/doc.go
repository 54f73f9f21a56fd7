// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package hub is the in-process publish/subscribe registry for change events.

# Scopes

  - Global: every game created/deleted and every session started, voted on,
    or closed produces a gamesUpdated event carrying the full projected
    game list.
  - Per-session: each accepted vote produces a voteUpdated event, and a
    close produces exactly one sessionClosed event carrying the final
    tally. A closed session is terminal, so no further events follow; the
    hub does not force-disconnect its subscribers.

# Delivery

Delivery is best-effort and isolated per subscriber: events go to buffered
channels with a non-blocking send, so one slow or dead consumer never
blocks a mutation or starves other subscribers. Transports (SSE handlers,
websocket handlers) own disconnect detection and call the unsubscribe
function returned at registration.
*/
package hub
