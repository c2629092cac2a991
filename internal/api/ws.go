package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/blacksite-games/incursion-engine/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsMessage is the envelope for every frame in both directions
type wsMessage struct {
	Type string          `json:"type"`
	Code string          `json:"code,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans engine snapshots out to every connected display. Subscribed as an
// engine observer, so a broadcast follows every state mutation and tick.
type Hub struct {
	mu      sync.Mutex
	clients map[*wsClient]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*wsClient]struct{}),
	}
}

// BroadcastState pushes a state_update frame to all clients
func (h *Hub) BroadcastState(snapshot models.Snapshot) {
	h.broadcast("state_update", snapshot)
}

// BroadcastHint pushes a hint frame to all clients
func (h *Hub) BroadcastHint(message string) {
	h.broadcast("hint", map[string]string{"message": message})
}

func (h *Hub) broadcast(msgType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal broadcast payload", "type", msgType, "error", err)
		return
	}
	frame, err := json.Marshal(wsMessage{Type: msgType, Data: data})
	if err != nil {
		slog.Error("failed to marshal broadcast frame", "type", msgType, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- frame:
		default:
			// Slow consumer, drop the frame rather than stall the game loop.
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c *wsClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// handleStateWS upgrades the connection, streams state updates, and accepts
// password_attempt frames from player terminals.
func (s *Server) handleStateWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade to websocket", "error", err)
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan []byte, 16),
	}
	s.hub.add(client)
	slog.Info("state websocket connected", "remote_addr", r.RemoteAddr)

	// Writer: owns the connection's write side
	go func() {
		for frame := range client.send {
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				slog.Debug("websocket write error", "error", err)
				break
			}
		}
		conn.Close()
	}()

	// Initial state so displays render immediately
	s.hub.sendTo(client, "state_update", s.engine.Snapshot())

	// Reader: inbound player frames
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Debug("websocket read error", "error", err)
			}
			break
		}

		var msg wsMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			slog.Debug("invalid websocket message", "error", err)
			continue
		}

		switch msg.Type {
		case "password_attempt":
			if msg.Code == "" {
				continue
			}
			result := s.engine.TryPassword(msg.Code)
			s.missions.LogEvent("password_attempt", map[string]any{
				"code":    msg.Code,
				"success": result.Success,
				"source":  "websocket",
			})
			s.hub.sendTo(client, "password_result", result)
		case "ping":
			s.hub.sendTo(client, "pong", nil)
		}
	}

	s.hub.remove(client)
	slog.Info("state websocket disconnected", "remote_addr", r.RemoteAddr)
}

// sendTo queues a frame for a single client
func (h *Hub) sendTo(c *wsClient, msgType string, payload any) {
	var data json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			slog.Error("failed to marshal frame payload", "type", msgType, "error", err)
			return
		}
		data = b
	}
	frame, err := json.Marshal(wsMessage{Type: msgType, Data: data})
	if err != nil {
		slog.Error("failed to marshal frame", "type", msgType, "error", err)
		return
	}

	select {
	case c.send <- frame:
	default:
	}
}
