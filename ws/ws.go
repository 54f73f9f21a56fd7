// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/danielhkuo/a-or-b/hub"
	"github.com/danielhkuo/a-or-b/middleware"
	"github.com/danielhkuo/a-or-b/models"
	"github.com/danielhkuo/a-or-b/store"
)

const writeTimeout = 3 * time.Second

// Message is the websocket wire frame, mirroring the SSE event shape.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Handler serves websocket subscription streams backed by the hub. Clients
// are receive-only: the server pushes the same events as the SSE endpoints.
type Handler struct {
	store *store.Store
	hub   *hub.Hub
}

func NewHandler(st *store.Store, h *hub.Hub) *Handler {
	return &Handler{store: st, hub: h}
}

// HostSocket handles GET /ws/host
func (h *Handler) HostSocket(w http.ResponseWriter, r *http.Request) {
	ch, unsub := h.hub.SubscribeGlobal()

	snapshot := models.GamesResponse{Games: models.ProjectGames(h.store.ListGames())}
	h.stream(w, r, ch, unsub, hub.NewEvent(hub.EventGamesUpdated, snapshot))
}

// SessionSocket handles GET /ws/session/{id}
func (h *Handler) SessionSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	ch, unsub := h.hub.SubscribeSession(sessionID)

	game, sess, err := h.store.FindSession(sessionID)
	if err != nil {
		unsub()
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	var initial hub.Event
	if sess.Status == models.StatusClosed {
		tally := models.FinalTally{
			SessionID:  sess.ID,
			GameTitle:  game.Title,
			OptionA:    game.OptionA,
			OptionB:    game.OptionB,
			Votes:      sess.Votes,
			TotalVotes: sess.Votes.Total(),
		}
		if sess.ClosedAt != nil {
			tally.ClosedAt = *sess.ClosedAt
		}
		initial = hub.NewEvent(hub.EventSessionClosed, tally)
	} else {
		initial = hub.NewEvent(hub.EventVoteUpdated, models.TallyUpdate{
			SessionID:  sess.ID,
			Votes:      sess.Votes,
			TotalVotes: sess.Votes.Total(),
		})
	}

	h.stream(w, r, ch, unsub, initial)
}

func (h *Handler) stream(w http.ResponseWriter, r *http.Request, ch <-chan hub.Event, unsub func(), initial hub.Event) {
	defer unsub()

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reader goroutine: subscribers send nothing, so a read only returns
	// when the peer disconnects.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	if err := writeEvent(ctx, conn, initial); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				// Hub shut down.
				return
			}
			if err := writeEvent(ctx, conn, ev); err != nil {
				return
			}
		}
	}
}

func writeEvent(ctx context.Context, conn *websocket.Conn, ev hub.Event) error {
	payload, err := json.Marshal(Message{Event: ev.Name, Data: ev.Data})
	if err != nil {
		return err
	}
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(wctx, websocket.MessageText, payload)
}
