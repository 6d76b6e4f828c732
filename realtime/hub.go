package realtime

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// Event types pushed to the admin dashboard.
const (
	EventOrderCreated               = "order.created"
	EventOrderStatusUpdated         = "order.status_updated"
	EventCustomRequestCreated       = "custom_request.created"
	EventCustomRequestStatusUpdated = "custom_request.status_updated"
	EventContactCreated             = "contact.created"
)

// Event is one message on the admin feed.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans events out to every connected admin dashboard.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	done       chan struct{}

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 256),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until ctx ends, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if h.clients[client] {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			message, err := json.Marshal(event)
			if err != nil {
				continue
			}

			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// slow reader
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues an event without blocking the request that produced it.
// Events are dropped when the queue is full or the hub has stopped.
func (h *Hub) Publish(eventType string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ ws: encode %s payload: %v", eventType, err)
		return
	}

	select {
	case <-h.done:
	case h.broadcast <- Event{Type: eventType, Payload: raw}:
	default:
		log.Printf("⚠️ ws: broadcast queue full, dropped %s", eventType)
	}
}

// ClientCount reports how many dashboards are connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
