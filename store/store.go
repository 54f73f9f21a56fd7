// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/a-or-b/db"
	"github.com/danielhkuo/a-or-b/ident"
	"github.com/danielhkuo/a-or-b/models"
)

// Store owns the in-memory game collection and its durable snapshot. All
// reads and mutations serialize through one mutex, which keeps the
// one-vote-per-token and one-active-session-per-game invariants race-free.
// Every mutation persists the full state before returning; a failed write
// rolls the in-memory change back so callers never observe a partial
// mutation.
type Store struct {
	mu    sync.Mutex
	db    *sql.DB
	games []*models.Game
}

// New loads the persisted snapshot and returns a ready store. A missing or
// malformed snapshot yields an empty collection rather than a startup
// failure; only an unreachable database is fatal.
func New(dbConn *sql.DB) (*Store, error) {
	s := &Store{db: dbConn, games: []*models.Game{}}

	payload, err := db.LoadSnapshot(dbConn)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		slog.Info("no snapshot found, starting empty")
		return s, nil
	}

	var state models.State
	if err := json.Unmarshal(payload, &state); err != nil || state.Games == nil {
		slog.Warn("snapshot malformed, starting empty", "error", err)
		return s, nil
	}

	s.games = state.Games
	normalize(s.games)
	slog.Info("snapshot loaded",
		"games", len(s.games),
		"size", humanize.Bytes(uint64(len(payload))),
	)
	return s, nil
}

// normalize backfills nil session lists and participant maps so loaded
// state behaves identically to freshly created state.
func normalize(games []*models.Game) {
	for _, g := range games {
		if g.Sessions == nil {
			g.Sessions = []*models.Session{}
		}
		for _, sess := range g.Sessions {
			if sess.ParticipantTokens == nil {
				sess.ParticipantTokens = map[string]string{}
			}
		}
	}
}

// persistLocked writes the full state snapshot. Callers must hold s.mu.
func (s *Store) persistLocked() error {
	payload, err := json.MarshalIndent(models.State{Games: s.games}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := db.SaveSnapshot(s.db, payload); err != nil {
		return err
	}
	slog.Debug("state persisted", "size", humanize.Bytes(uint64(len(payload))))
	return nil
}

// ListGames returns a deep copy of all games, newest first.
func (s *Store) ListGames() []*models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	games := make([]*models.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, cloneGame(g))
	}
	return games
}

// FindSession locates a session by id across all games and returns deep
// copies of the session and its owning game.
func (s *Store) FindSession(sessionID string) (*models.Game, *models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, sess := s.findSessionLocked(sessionID)
	if sess == nil {
		return nil, nil, notFoundErr("session not found")
	}
	return cloneGame(game), cloneSession(sess), nil
}

// CreateGame validates input, assigns a fresh id, and prepends the game to
// the collection.
func (s *Store) CreateGame(title, optionA, optionB string) (*models.Game, error) {
	title = strings.TrimSpace(title)
	optionA = strings.TrimSpace(optionA)
	optionB = strings.TrimSpace(optionB)
	if title == "" || optionA == "" || optionB == "" {
		return nil, validationErr("title, optionA and optionB are required")
	}

	id, err := ident.GenerateID(ident.GameIDBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate game ID: %w", err)
	}

	game := &models.Game{
		ID:        id,
		Title:     title,
		OptionA:   optionA,
		OptionB:   optionB,
		CreatedAt: time.Now().UTC(),
		Sessions:  []*models.Session{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = append([]*models.Game{game}, s.games...)
	if err := s.persistLocked(); err != nil {
		s.games = s.games[1:]
		return nil, err
	}
	return cloneGame(game), nil
}

// DeleteGame removes a game and all its sessions and votes.
func (s *Store) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, g := range s.games {
		if g.ID == gameID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return notFoundErr("game not found")
	}

	removed := s.games[idx]
	s.games = append(s.games[:idx:idx], s.games[idx+1:]...)
	if err := s.persistLocked(); err != nil {
		s.games = insertGame(s.games, idx, removed)
		return err
	}
	return nil
}

// DeleteSession removes a single session from its owning game.
func (s *Store) DeleteSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.games {
		for i, sess := range g.Sessions {
			if sess.ID == sessionID {
				g.Sessions = append(g.Sessions[:i:i], g.Sessions[i+1:]...)
				if err := s.persistLocked(); err != nil {
					g.Sessions = insertSession(g.Sessions, i, sess)
					return err
				}
				return nil
			}
		}
	}
	return notFoundErr("session not found")
}

// findSessionLocked scans all games for a session id. Callers must hold
// s.mu. Returns nils when absent.
func (s *Store) findSessionLocked(sessionID string) (*models.Game, *models.Session) {
	for _, g := range s.games {
		for _, sess := range g.Sessions {
			if sess.ID == sessionID {
				return g, sess
			}
		}
	}
	return nil, nil
}

func (s *Store) findGameLocked(gameID string) *models.Game {
	for _, g := range s.games {
		if g.ID == gameID {
			return g
		}
	}
	return nil
}

func insertGame(games []*models.Game, idx int, g *models.Game) []*models.Game {
	games = append(games, nil)
	copy(games[idx+1:], games[idx:])
	games[idx] = g
	return games
}

func insertSession(sessions []*models.Session, idx int, sess *models.Session) []*models.Session {
	sessions = append(sessions, nil)
	copy(sessions[idx+1:], sessions[idx:])
	sessions[idx] = sess
	return sessions
}

func cloneSession(sess *models.Session) *models.Session {
	dup := *sess
	if sess.ClosedAt != nil {
		t := *sess.ClosedAt
		dup.ClosedAt = &t
	}
	dup.ParticipantTokens = maps.Clone(sess.ParticipantTokens)
	return &dup
}

func cloneGame(g *models.Game) *models.Game {
	dup := *g
	dup.Sessions = make([]*models.Session, 0, len(g.Sessions))
	for _, sess := range g.Sessions {
		dup.Sessions = append(dup.Sessions, cloneSession(sess))
	}
	return &dup
}
