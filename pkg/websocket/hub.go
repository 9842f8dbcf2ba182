package websocketPkg

import (
	"sync"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Event is a single frame pushed to every connected client: a type tag plus
// an arbitrary payload. Clients use the type to route the payload.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type ItfHub interface {
	Register(conn *websocket.Conn)
	Unregister(conn *websocket.Conn)
	Broadcast(eventType string, payload interface{})
	ClientCount() int
}

type hub struct {
	log     *logrus.Logger
	clients map[*websocket.Conn]struct{}
	mutex   sync.RWMutex
}

func NewHub(log *logrus.Logger) ItfHub {
	return &hub{
		log:     log,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

func (h *hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[conn] = struct{}{}
	h.log.Infof("Event stream client connected, total: %d", len(h.clients))
}

func (h *hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		h.log.Infof("Event stream client disconnected, total: %d", len(h.clients))
	}
}

// Broadcast serializes once and fans the frame out to every client. Writes
// that fail drop the client; the caller never blocks on a slow consumer
// longer than the write itself.
func (h *hub) Broadcast(eventType string, payload interface{}) {
	frame, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		h.log.Errorf("Failed to marshal %s event: %v", eventType, err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			h.log.Warnf("Dropping event stream client: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
