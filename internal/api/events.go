package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event types sent to subscribers
const (
	EventConnected   = "connected"
	EventRevalidated = "revalidated"
)

// Event is one message on the revalidation stream
type Event struct {
	Type string   `json:"type"`
	Tags []string `json:"tags,omitempty"`
	Now  int64    `json:"now"`
}

const (
	subscriberBuffer = 16
	writeWait        = 10 * time.Second
)

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans revalidation events out to websocket subscribers. Subscribers that
// fall behind are disconnected rather than blocking the revalidation request.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{subscribers: make(map[*subscriber]struct{})}
}

// Broadcast queues the event for every subscriber
func (h *Hub) Broadcast(e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		slog.Error("failed to marshal event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		select {
		case sub.send <- data:
		default:
			slog.Warn("dropping slow event subscriber", "remote_addr", sub.conn.RemoteAddr())
			h.removeLocked(sub)
		}
	}
}

// Count returns the number of connected subscribers
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Close disconnects every subscriber
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		h.removeLocked(sub)
	}
}

func (h *Hub) add(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers[sub] = struct{}{}
}

func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(sub)
}

func (h *Hub) removeLocked(sub *subscriber) {
	if _, ok := h.subscribers[sub]; !ok {
		return
	}
	delete(h.subscribers, sub)
	close(sub.send)
}

func (s *Server) handleRevalidationEvents(w http.ResponseWriter, r *http.Request) {
	if !s.authorizeRevalidation(w, r) {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade to websocket", "error", err)
		return
	}
	defer conn.Close()

	sub := &subscriber{conn: conn, send: make(chan []byte, subscriberBuffer)}
	hello, _ := json.Marshal(Event{Type: EventConnected, Now: time.Now().UnixMilli()})
	sub.send <- hello
	s.hub.add(sub)
	defer s.hub.remove(sub)

	slog.Info("event subscriber connected", "remote_addr", r.RemoteAddr, "subscribers", s.hub.Count())

	var wg sync.WaitGroup
	done := make(chan struct{})

	// Hub -> WebSocket
	wg.Add(1)
	go func() {
		defer wg.Done()
		for data := range sub.send {
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				slog.Debug("failed to send event", "error", err)
				conn.Close()
				return
			}
		}
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait))
		conn.Close()
	}()

	// Subscribers only listen; reading detects the close
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					slog.Debug("websocket read error", "error", err)
				}
				return
			}
		}
	}()

	<-done
	s.hub.remove(sub)
	wg.Wait()
	slog.Info("event subscriber disconnected", "remote_addr", r.RemoteAddr)
}
