// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// SessionView is the externally visible projection of a Session. While a
// session is active only the participant count is exposed; Votes and
// TotalVotes are populated once the session is closed. Every serialization
// of a session must go through ProjectSession so the tally-hiding rule
// lives in exactly one place.
type SessionView struct {
	ID           string      `json:"id"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	ClosedAt     *time.Time  `json:"closedAt"`
	Participants int         `json:"participants"`
	Votes        *VoteCounts `json:"votes,omitempty"`
	TotalVotes   *int        `json:"totalVotes,omitempty"`
}

// GameView is the public projection of a Game with its projected sessions.
type GameView struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	OptionA   string        `json:"optionA"`
	OptionB   string        `json:"optionB"`
	CreatedAt time.Time     `json:"createdAt"`
	Sessions  []SessionView `json:"sessions"`
}

// GameSummary is the game header echoed alongside a single session.
type GameSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	OptionA string `json:"optionA"`
	OptionB string `json:"optionB"`
}

// ProjectSession converts a Session to its external view. Tallies are
// revealed only for closed sessions.
func ProjectSession(s *Session) SessionView {
	view := SessionView{
		ID:           s.ID,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		ClosedAt:     s.ClosedAt,
		Participants: len(s.ParticipantTokens),
	}
	if s.Status == StatusClosed {
		votes := s.Votes
		total := votes.Total()
		view.Votes = &votes
		view.TotalVotes = &total
	}
	return view
}

// ProjectGame converts a Game and all its sessions to the public view.
func ProjectGame(g *Game) GameView {
	sessions := make([]SessionView, 0, len(g.Sessions))
	for _, s := range g.Sessions {
		sessions = append(sessions, ProjectSession(s))
	}
	return GameView{
		ID:        g.ID,
		Title:     g.Title,
		OptionA:   g.OptionA,
		OptionB:   g.OptionB,
		CreatedAt: g.CreatedAt,
		Sessions:  sessions,
	}
}

// ProjectGames converts the whole collection, preserving order.
func ProjectGames(games []*Game) []GameView {
	views := make([]GameView, 0, len(games))
	for _, g := range games {
		views = append(views, ProjectGame(g))
	}
	return views
}

// SummarizeGame returns the game header fields without sessions.
func SummarizeGame(g *Game) GameSummary {
	return GameSummary{
		ID:      g.ID,
		Title:   g.Title,
		OptionA: g.OptionA,
		OptionB: g.OptionB,
	}
}
