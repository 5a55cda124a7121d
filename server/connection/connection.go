package connection

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lazharichir/showdown/metrics"
)

// Client represents a connected spectator session
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// Manager handles all client connections
type Manager struct {
	clients    map[string]*Client // Map session IDs to clients
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

// NewManager creates a new connection manager
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start begins processing connection events until ctx is cancelled
func (m *Manager) Start(ctx context.Context) {
	for {
		select {
		case client := <-m.Register:
			m.mutex.Lock()
			m.clients[client.ID] = client
			metrics.UpdateActiveSessions(len(m.clients))
			m.mutex.Unlock()
		case client := <-m.Unregister:
			m.mutex.Lock()
			if _, ok := m.clients[client.ID]; ok {
				delete(m.clients, client.ID)
				close(client.Send)
			}
			metrics.UpdateActiveSessions(len(m.clients))
			m.mutex.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

// Broadcast sends a message to every connected client
func (m *Manager) Broadcast(message []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, client := range m.clients {
		select {
		case client.Send <- message:
		default:
			// Drop for slow consumers rather than block the hub
		}
	}
}

// Count returns the number of connected clients
func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.clients)
}
