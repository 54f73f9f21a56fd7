// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"time"

	"github.com/danielhkuo/a-or-b/ident"
	"github.com/danielhkuo/a-or-b/models"
)

// Session lifecycle: active is the initial state, closed is terminal.
// There is no reopen.

// StartSession creates a new active session for a game. Fails when the
// game is absent or when the game already has an active session.
func (s *Store) StartSession(gameID string) (*models.Session, error) {
	id, err := ident.GenerateID(ident.SessionIDBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game := s.findGameLocked(gameID)
	if game == nil {
		return nil, notFoundErr("game not found")
	}
	for _, sess := range game.Sessions {
		if sess.Status == models.StatusActive {
			return nil, conflictErr("game already has an active session")
		}
	}

	sess := &models.Session{
		ID:                id,
		Status:            models.StatusActive,
		CreatedAt:         time.Now().UTC(),
		Votes:             models.VoteCounts{},
		ParticipantTokens: map[string]string{},
	}

	game.Sessions = append([]*models.Session{sess}, game.Sessions...)
	if err := s.persistLocked(); err != nil {
		game.Sessions = game.Sessions[1:]
		return nil, err
	}
	return cloneSession(sess), nil
}

// CastVote records one vote on an active session. The token is a
// client-supplied idempotency key: the first write wins and is never
// overwritten, so a repeated token fails even when the choice matches the
// prior entry. Returns the updated tally for subscriber notification.
func (s *Store) CastVote(sessionID, choice, token string) (models.TallyUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, sess := s.findSessionLocked(sessionID)
	if sess == nil {
		return models.TallyUpdate{}, notFoundErr("session not found")
	}
	if sess.Status != models.StatusActive {
		return models.TallyUpdate{}, conflictErr("session already closed")
	}
	if choice != models.ChoiceA && choice != models.ChoiceB {
		return models.TallyUpdate{}, validationErr("choice must be A or B")
	}
	if token == "" {
		return models.TallyUpdate{}, validationErr("participant token is required")
	}
	if _, voted := sess.ParticipantTokens[token]; voted {
		return models.TallyUpdate{}, conflictErr("already voted")
	}

	sess.ParticipantTokens[token] = choice
	if choice == models.ChoiceA {
		sess.Votes.A++
	} else {
		sess.Votes.B++
	}

	if err := s.persistLocked(); err != nil {
		delete(sess.ParticipantTokens, token)
		if choice == models.ChoiceA {
			sess.Votes.A--
		} else {
			sess.Votes.B--
		}
		return models.TallyUpdate{}, err
	}

	return models.TallyUpdate{
		SessionID:  sess.ID,
		Votes:      sess.Votes,
		TotalVotes: sess.Votes.Total(),
	}, nil
}

// CloseSession transitions a session from active to closed and stamps
// closedAt. The transition is one-way: closing an already closed session
// fails. Returns the final tally.
func (s *Store) CloseSession(sessionID string) (models.FinalTally, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, sess := s.findSessionLocked(sessionID)
	if sess == nil {
		return models.FinalTally{}, notFoundErr("session not found")
	}
	if sess.Status != models.StatusActive {
		return models.FinalTally{}, conflictErr("session already closed")
	}

	closedAt := time.Now().UTC()
	sess.Status = models.StatusClosed
	sess.ClosedAt = &closedAt

	if err := s.persistLocked(); err != nil {
		sess.Status = models.StatusActive
		sess.ClosedAt = nil
		return models.FinalTally{}, err
	}

	return models.FinalTally{
		SessionID:  sess.ID,
		GameTitle:  game.Title,
		OptionA:    game.OptionA,
		OptionB:    game.OptionB,
		Votes:      sess.Votes,
		TotalVotes: sess.Votes.Total(),
		ClosedAt:   closedAt,
	}, nil
}
