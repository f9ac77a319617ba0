package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Role   string
	Conn   *websocket.Conn
}

// RealtimeHub pushes marketplace events (new listings, reservations) to
// connected clients over websockets, optionally filtered by role.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastToRole sends payload to every client with the given role; an
// empty role broadcasts to everyone. Write errors are ignored, the dead
// connection unregisters itself on its next read.
func (h *RealtimeHub) BroadcastToRole(role string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if role != "" && c.Role != role {
			continue
		}
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
