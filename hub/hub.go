// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Event names pushed to subscribers.
const (
	EventGamesUpdated  = "gamesUpdated"
	EventVoteUpdated   = "voteUpdated"
	EventSessionClosed = "sessionClosed"
)

// Event is a named, pre-marshaled payload ready for delivery over SSE or
// websocket.
type Event struct {
	Name string
	Data []byte
}

// NewEvent marshals a payload into an Event. A payload that fails to
// marshal is a programming error; it is logged and delivered with empty
// data rather than dropped silently.
func NewEvent(name string, payload any) Event {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode event payload", "event", name, "error", err)
	}
	return Event{Name: name, Data: data}
}

// subscriberBuffer is the per-subscriber channel depth. Delivery is
// non-blocking: when a subscriber's buffer is full the event is dropped
// for that subscriber only.
const subscriberBuffer = 16

// Hub is the in-process pub/sub for state change events. Two independent
// scopes: global subscribers see every collection change, per-session
// subscribers see vote and close events for one session id. Registrations
// are ephemeral; nothing here is persisted.
type Hub struct {
	mu       sync.Mutex
	closed   bool
	global   map[string]chan Event
	sessions map[string]map[string]chan Event
}

// New creates an empty hub.
func New() *Hub {
	return &Hub{
		global:   make(map[string]chan Event),
		sessions: make(map[string]map[string]chan Event),
	}
}

// SubscribeGlobal registers a subscriber for all game list changes.
// Returns the event channel and an unsubscribe function; the channel is
// closed on unsubscribe or hub shutdown.
func (h *Hub) SubscribeGlobal() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := uuid.NewString()
	h.global[id] = ch
	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.global[id]; ok {
			delete(h.global, id)
			close(ch)
		}
	}
}

// SubscribeSession registers a subscriber for one session's events.
func (h *Hub) SubscribeSession(sessionID string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := uuid.NewString()
	if h.sessions[sessionID] == nil {
		h.sessions[sessionID] = make(map[string]chan Event)
	}
	h.sessions[sessionID][id] = ch
	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		subs := h.sessions[sessionID]
		if _, ok := subs[id]; ok {
			delete(subs, id)
			close(ch)
		}
		if len(subs) == 0 {
			delete(h.sessions, sessionID)
		}
	}
}

// PublishGlobal fans an event out to every global subscriber. Best-effort:
// a lagging subscriber misses the event, others are unaffected.
func (h *Hub) PublishGlobal(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.global {
		deliver(ch, ev)
	}
}

// PublishSession fans an event out to one session's subscribers.
func (h *Hub) PublishSession(sessionID string, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.sessions[sessionID] {
		deliver(ch, ev)
	}
}

func deliver(ch chan Event, ev Event) {
	select {
	case ch <- ev:
	default:
		// Subscriber buffer full; drop this event for that subscriber.
		slog.Debug("dropped event for slow subscriber", "event", ev.Name)
	}
}

// Close shuts the hub down, closing every subscriber channel. Publishing
// after Close is a no-op; subscribing returns an already closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id, ch := range h.global {
		delete(h.global, id)
		close(ch)
	}
	for sessionID, subs := range h.sessions {
		for id, ch := range subs {
			delete(subs, id)
			close(ch)
		}
		delete(h.sessions, sessionID)
	}
}
