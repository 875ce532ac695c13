// Package notifications delivers live feed events over WebSocket.
package notifications

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"agora/internal/observability"

	"github.com/gofiber/websocket/v2"
)

const maxTotalConns = 10000

// Feed event types.
const (
	EventPostCreated    = "post_created"
	EventCommentCreated = "comment_created"
)

// FeedEvent is the JSON payload pushed to feed subscribers.
type FeedEvent struct {
	Type      string `json:"type"`
	PostID    uint   `json:"post_id"`
	CommentID uint   `json:"comment_id,omitempty"`
	Actor     string `json:"actor"`
	Community string `json:"community,omitempty"`
	Topic     string `json:"topic,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Hub fans feed events out to every connected client. Subscribers are
// anonymous: the feed carries only public activity, so there is no per-user
// routing.
type Hub struct {
	mu    sync.RWMutex
	conns map[*Client]struct{}
}

// NewHub creates an empty feed hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*Client]struct{})}
}

// Register attaches a connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) (*Client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.conns) >= maxTotalConns {
		return nil, errors.New("server connection limit reached")
	}

	client := NewClient(h, conn)
	h.conns[client] = struct{}{}
	observability.FeedConnections.Inc()
	return client, nil
}

// UnregisterClient detaches a connection. Safe to call more than once.
func (h *Hub) UnregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[client]; ok {
		delete(h.conns, client)
		observability.FeedConnections.Dec()
	}
}

// ConnectionCount returns the number of attached clients.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// BroadcastEvent pushes an event to every connected client. Slow clients
// drop messages rather than block the broadcast.
func (h *Hub) BroadcastEvent(event FeedEvent) {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("feed hub: failed to marshal event: %v", err)
		return
	}
	observability.FeedEvents.WithLabelValues(event.Type).Inc()

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.conns {
		client.TrySend(payload)
	}
}
