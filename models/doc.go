// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, response, and projection types.

# Domain Types

Canonical in-memory (and persisted) entities:

  - Game: title, two options, ordered session list (newest first)
  - Session: lifecycle status, vote counts, participant token map
  - VoteCounts: running A/B tally
  - State: the {games: [...]} snapshot shape

# Projections

External views derived from the domain types:

  - SessionView: hides Votes/TotalVotes while a session is active and
    exposes the participant count instead; reveals exact tallies once
    the session is closed
  - GameView: public game with projected sessions
  - GameSummary: game header without sessions

All session serialization funnels through ProjectSession so the
visibility rule is enforced in one place rather than per caller.

# Event Payloads

  - TallyUpdate: per-vote tally pushed to session subscribers
  - FinalTally: close result, echoing game title and options

# Constants

Session status values:

	StatusActive = "active"
	StatusClosed = "closed"

Vote choices:

	ChoiceA = "A"
	ChoiceB = "B"
*/
package models
