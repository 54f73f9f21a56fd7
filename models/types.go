package models

import "time"

// Session status constants
const (
	StatusActive = "active"
	StatusClosed = "closed"
)

// Vote choice constants
const (
	ChoiceA = "A"
	ChoiceB = "B"
)

// Domain types

// VoteCounts holds the running tally for the two options.
type VoteCounts struct {
	A int `json:"A"`
	B int `json:"B"`
}

// Total returns the combined vote count.
func (v VoteCounts) Total() int {
	return v.A + v.B
}

// Session is one timed round of voting for a game. ParticipantTokens maps
// each voter's opaque token to the choice it cast; a token appears at most
// once and is never overwritten.
type Session struct {
	ID                string            `json:"id"`
	Status            string            `json:"status"`
	CreatedAt         time.Time         `json:"createdAt"`
	ClosedAt          *time.Time        `json:"closedAt,omitempty"`
	Votes             VoteCounts        `json:"votes"`
	ParticipantTokens map[string]string `json:"participantTokens"`
}

// Game is a title plus two named options, played across multiple sessions.
// Sessions are ordered newest first.
type Game struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	OptionA   string     `json:"optionA"`
	OptionB   string     `json:"optionB"`
	CreatedAt time.Time  `json:"createdAt"`
	Sessions  []*Session `json:"sessions"`
}

// State is the durable snapshot shape, mirroring the in-memory collection.
type State struct {
	Games []*Game `json:"games"`
}

// Request types

type CreateGameRequest struct {
	Title   string `json:"title"`
	OptionA string `json:"optionA"`
	OptionB string `json:"optionB"`
}

type VoteRequest struct {
	Choice string `json:"choice"`
	Token  string `json:"token"`
}

// Response types

type GamesResponse struct {
	Games []GameView `json:"games"`
}

type CreateGameResponse struct {
	Game GameView `json:"game"`
}

type StartSessionResponse struct {
	Session SessionView `json:"session"`
}

type SessionDetailResponse struct {
	Game    GameSummary `json:"game"`
	Session SessionView `json:"session"`
}

// AckResponse acknowledges a vote or a delete.
type AckResponse struct {
	OK bool `json:"ok"`
}

// Event payloads

// TallyUpdate is pushed to per-session subscribers on every accepted vote.
type TallyUpdate struct {
	SessionID  string     `json:"sessionId"`
	Votes      VoteCounts `json:"votes"`
	TotalVotes int        `json:"totalVotes"`
}

// FinalTally is the close response and the payload of the session-closed
// event. It echoes the game title and options so display-only consumers
// need no extra lookup.
type FinalTally struct {
	SessionID  string     `json:"sessionId"`
	GameTitle  string     `json:"gameTitle"`
	OptionA    string     `json:"optionA"`
	OptionB    string     `json:"optionB"`
	Votes      VoteCounts `json:"votes"`
	TotalVotes int        `json:"totalVotes"`
	ClosedAt   time.Time  `json:"closedAt"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
