package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lazharichir/showdown/server/connection"
)

const (
	sendBufferSize = 256
	pingPeriod     = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// wsMessage is the envelope for all server-to-client WebSocket messages.
// Type is "result" for a direct reply, "duel" for a broadcast of any duel
// played on the server, and "error" for a rejected request.
type wsMessage struct {
	Type  string         `json:"type"`
	Duel  *Duel          `json:"duel,omitempty"`
	Error *errorResponse `json:"error,omitempty"`
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	// Create a new client with a unique session ID
	client := &connection.Client{
		ID:   uuid.NewString(),
		Conn: conn,
		Send: make(chan []byte, sendBufferSize),
	}
	s.log.Info("client connected", zap.String("session", client.ID), zap.String("remote", r.RemoteAddr))

	// Register with connection manager
	s.connMgr.Register <- client

	// Handle reading and writing in separate goroutines
	go s.readPump(client)
	go s.writePump(client)
}

// readPump reads duel requests from the WebSocket connection
func (s *Server) readPump(client *connection.Client) {
	defer func() {
		s.connMgr.Unregister <- client
		client.Conn.Close()
		s.log.Info("client disconnected", zap.String("session", client.ID))
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.log.Warn("websocket read failed", zap.String("session", client.ID), zap.Error(err))
			}
			break
		}

		var req duelRequest
		if err := json.Unmarshal(message, &req); err != nil {
			s.sendToClient(client, wsMessage{Type: "error", Error: &errorResponse{Code: "invalid_body", Message: err.Error()}})
			continue
		}

		duel, err := s.playDuel(req.HandA, req.HandB)
		if err != nil {
			s.sendToClient(client, wsMessage{Type: "error", Error: &errorResponse{Code: rejectionReason(err), Message: err.Error()}})
			continue
		}

		s.sendToClient(client, wsMessage{Type: "result", Duel: &duel})
	}
}

// writePump sends queued messages and periodic pings to the WebSocket
// connection. It is the only goroutine writing to the connection.
func (s *Server) writePump(client *connection.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			if !ok {
				// Channel closed
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				s.log.Warn("websocket write failed", zap.String("session", client.ID), zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// sendToClient queues a message for a single client
func (s *Server) sendToClient(client *connection.Client, message wsMessage) {
	payload, err := json.Marshal(message)
	if err != nil {
		s.log.Error("failed to encode message", zap.Error(err))
		return
	}
	client.Send <- payload
}

// broadcastDuel announces a played duel to every connected session
func (s *Server) broadcastDuel(duel Duel) {
	payload, err := json.Marshal(wsMessage{Type: "duel", Duel: &duel})
	if err != nil {
		s.log.Error("failed to encode duel broadcast", zap.Error(err))
		return
	}
	s.connMgr.Broadcast(payload)
}
