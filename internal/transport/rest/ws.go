package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/Mbaimbai1985/taskmanagement/internal/broadcast"
	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

type subscriber interface {
	Subscribe(topic string) *broadcast.Subscription
}

// StreamHandler pushes broadcast events to WebSocket clients.
type StreamHandler struct {
	hub            subscriber
	actors         actorResolver
	originPatterns []string
	writeTimeout   time.Duration
	log            *slog.Logger
}

// NewStreamHandler creates a StreamHandler. originPatterns follow
// websocket.AcceptOptions; a "*" entry disables origin checks.
func NewStreamHandler(hub subscriber, actors actorResolver, originPatterns []string, writeTimeout time.Duration, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		hub:            hub,
		actors:         actors,
		originPatterns: originPatterns,
		writeTimeout:   writeTimeout,
		log:            logger.With("handler", "stream"),
	}
}

// Subscribe handles GET /ws?topic=. Each event on the topic is written as one
// JSON text message. The server never reads application data from the client.
func (h *StreamHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actors.CurrentActor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	topic := r.URL.Query().Get("topic")
	if !domain.ValidTopic(topic) {
		writeError(w, http.StatusBadRequest, "unknown topic")
		return
	}

	// Subscribe before the upgrade completes so no event published after the
	// client sees the handshake is missed.
	sub := h.hub.Subscribe(topic)
	defer sub.Close()

	conn, err := websocket.Accept(w, r, h.acceptOptions())
	if err != nil {
		h.log.WarnContext(r.Context(), "websocket accept failed", slog.String("error", err.Error()))
		return
	}
	defer conn.CloseNow() //nolint:errcheck

	h.log.DebugContext(r.Context(), "subscriber connected",
		slog.String("topic", topic),
		slog.String("user_id", actor.ID.String()),
	)

	// CloseRead handles control frames and cancels ctx when the peer goes away.
	ctx := conn.CloseRead(r.Context())
	err = h.pump(ctx, conn, sub)

	switch {
	case err == nil:
		conn.Close(websocket.StatusGoingAway, "server shutting down") //nolint:errcheck
	case errors.Is(err, context.Canceled), websocket.CloseStatus(err) != -1:
	default:
		h.log.WarnContext(r.Context(), "websocket write failed",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)
	}
}

// pump forwards events until ctx ends or the subscription is closed, which
// it reports as a nil error.
func (h *StreamHandler) pump(ctx context.Context, conn *websocket.Conn, sub *broadcast.Subscription) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if err := h.write(ctx, conn, ev); err != nil {
				return err
			}
		}
	}
}

func (h *StreamHandler) write(ctx context.Context, conn *websocket.Conn, ev domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, h.writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, ev)
}

func (h *StreamHandler) acceptOptions() *websocket.AcceptOptions {
	for _, p := range h.originPatterns {
		if p == "*" {
			return &websocket.AcceptOptions{InsecureSkipVerify: true}
		}
	}
	return &websocket.AcceptOptions{OriginPatterns: h.originPatterns}
}
