// Package ws pushes game updates to connected clients so open scoreboards
// re-render without polling.
package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Event types broadcast by the REST handlers
const (
	EventGameCreated   = "game_created"
	EventRoundAdded    = "round_added"
	EventRoundUpdated  = "round_updated"
	EventGameCompleted = "game_completed"
	EventGameDeleted   = "game_deleted"
)

// Event is one message pushed to clients
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Client is one connected websocket consumer
type Client struct {
	conn *websocket.Conn
	send chan Event
}

// WritePump drains the client's send channel onto the connection
func (c *Client) WritePump(h *Hub) {
	defer c.conn.Close()
	for event := range c.send {
		if err := c.conn.WriteJSON(event); err != nil {
			h.unregister <- c
			return
		}
	}
}

// ReadPump discards inbound messages and unregisters on disconnect
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Hub fans events out to every connected client
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
}

// NewHub creates a hub; call Run in a goroutine to start it
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 16),
	}
}

// Run owns the client set; all membership changes and sends go through here
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case event := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- event:
				default:
					// Slow consumer; drop it rather than block the hub
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Broadcast queues an event for every connected client
func (h *Hub) Broadcast(eventType string, data any) {
	h.broadcast <- Event{Type: eventType, Data: data}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for simplicity; adjust in production
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWs upgrades an HTTP request and attaches the client to the hub
func ServeWs(h *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	client := &Client{conn: conn, send: make(chan Event, 256)}
	h.register <- client

	go client.WritePump(h)
	go client.ReadPump(h)
}
