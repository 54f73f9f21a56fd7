// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the game collection and the session state machine.

# Ownership

The Store is the single owner of all mutable game state. It is constructed
once at process start from the persisted snapshot and every read or
mutation goes through its methods, serialized by one mutex. Nothing else in
the process touches the collection, which makes the two core invariants
trivially race-free:

  - at most one active session per game
  - at most one vote per participant token per session

A third invariant holds at all times: votes.A + votes.B equals the number
of participant tokens.

# Persistence

Mutations persist the full state synchronously before returning. When the
snapshot write fails the in-memory change is reverted, so an operation
either completes with a definite result or fails atomically.

# Session Lifecycle

	active --close--> closed (terminal)

StartSession refuses a second active session per game. CastVote only
admits votes on active sessions and rejects repeated tokens without
overwriting. CloseSession is irreversible; a second close fails.

# Errors

Failures wrap one of three category sentinels - ErrValidation,
ErrNotFound, ErrConflict - checked with errors.Is. Messages are safe to
return to clients.
*/
package store
