package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Event types broadcast to connected observers. These notifications are the
// only channel through which the off-core frontend learns of state changes.
const (
	EventCompanyRegistered = "company_registered"
	EventProductCreated    = "product_created"
	EventClientRegistered  = "client_registered"
	EventPurchaseCompleted = "purchase_completed"
)

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

// Publish broadcasts a domain event envelope to all connected observers.
// Safe on a nil hub so services can run without an event feed (tests).
func (h *Hub) Publish(event string, payload map[string]interface{}) {
	if h == nil {
		return
	}
	envelope := map[string]interface{}{"type": event}
	for k, v := range payload {
		envelope[k] = v
	}
	msg, err := json.Marshal(envelope)
	if err != nil {
		log.Println("ws: failed to marshal event:", err)
		return
	}
	h.Broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS Client Connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
