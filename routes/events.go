package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// Event is broadcast to dashboard clients whenever the catalog changes.
type Event struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     uint   `json:"id"`
}

// Hub fans catalog change events out to connected websocket clients. The
// feed is one-way; inbound frames are read only to detect the close.
type Hub struct {
	mutex     sync.Mutex
	clients   map[*websocket.Conn]bool
	broadcast chan []byte
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan []byte, 100), // Buffered channel to prevent blocking
	}
}

// Run delivers queued events to every connected client, dropping clients
// whose writes fail.
func (h *Hub) Run() {
	for message := range h.broadcast {
		h.mutex.Lock()
		for client := range h.clients {
			if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(h.clients, client)
			}
		}
		h.mutex.Unlock()
	}
}

// Publish queues an event without blocking; if the buffer is full the
// event is dropped rather than stalling the request.
func (h *Hub) Publish(entity, action string, id uint) {
	payload, err := json.Marshal(Event{Entity: entity, Action: action, ID: id})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- payload:
	default:
	}
}

// Handler upgrades the connection and keeps it registered until the
// client goes away.
func (h *Hub) Handler() fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		h.mutex.Lock()
		h.clients[conn] = true
		h.mutex.Unlock()
		log.Println("Client connected:", conn.RemoteAddr())

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				h.mutex.Lock()
				delete(h.clients, conn)
				h.mutex.Unlock()
				log.Println("Client disconnected:", conn.RemoteAddr())
				return
			}
		}
	})
}
