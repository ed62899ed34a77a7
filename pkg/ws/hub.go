package ws

import (
	"encoding/json"
	"sync"
	"time"

	"interview-marketplace-backend/pkg/logger"
)

// Event is the envelope pushed to connected users.
type Event struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload,omitempty"`
	Timestamp string `json:"timestamp"`
}

type message struct {
	userID string
	data   []byte
}

// Hub tracks connected clients per user and routes events to them.
type Hub struct {
	clients    map[string]map[*Client]bool
	direct     chan message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		direct:     make(chan message, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and deliveries until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mutex.Lock()
			for _, set := range h.clients {
				for c := range set {
					close(c.send)
				}
			}
			h.clients = make(map[string]map[*Client]bool)
			h.mutex.Unlock()
			h.drainRegistrations()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[client.userID] = set
			}
			set[client] = true
			h.mutex.Unlock()
			logger.Log.Debug("ws connected", "user_id", client.userID, "total_clients", h.ClientCount())

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.remove(client)
			logger.Log.Debug("ws disconnected", "user_id", client.userID, "total_clients", h.ClientCount())

		case msg := <-h.direct:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients[msg.userID]))
			for c := range h.clients[msg.userID] {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- msg.data:
				default:
					// slow consumer
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	set, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, ok := set[client]; ok {
		delete(set, client)
		close(client.send)
	}
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
}

// Stop terminates Run and closes every client's send channel.
func (h *Hub) Stop() {
	if h == nil {
		return
	}
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}

// Register attaches client. After Stop the client's send channel is closed
// instead so its write pump exits.
func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case <-h.done:
		close(client.send)
		return
	default:
	}
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

// Unregister detaches client. It never blocks once the hub is stopped.
func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case <-h.done:
		return
	default:
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// drainRegistrations closes clients that were queued while Run was stopping.
func (h *Hub) drainRegistrations() {
	for {
		select {
		case c := <-h.register:
			if c != nil {
				close(c.send)
			}
		default:
			return
		}
	}
}

// Publish sends an event to every connection of userID. Events for users
// that are not connected, or that do not fit in the buffer, are dropped.
func (h *Hub) Publish(userID, event string, payload any) {
	if h == nil || userID == "" {
		return
	}
	b, err := json.Marshal(Event{
		Type:      event,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Log.Warn("ws publish marshal failed", "event", event, "error", err)
		return
	}

	select {
	case h.direct <- message{userID: userID, data: b}:
	default:
		logger.Log.Warn("ws publish dropped", "event", event, "reason", "buffer_full")
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

// Connected reports whether userID has at least one open connection.
func (h *Hub) Connected(userID string) bool {
	if h == nil {
		return false
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[userID]) > 0
}
