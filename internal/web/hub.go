package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vitos/crypto_trade_learner/internal/domain"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

// Hub keeps the latest snapshot and pushes every new one to connected
// websocket clients.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *zap.Logger

	writeMu sync.Mutex // one writer per connection at a time

	mu      sync.RWMutex
	latest  *domain.Snapshot
	clients map[*websocket.Conn]struct{}
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Publish implements domain.StateObserver.
func (h *Hub) Publish(snapshot domain.Snapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		h.logger.Error("Failed to marshal snapshot", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.latest = &snapshot
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	for _, c := range clients {
		c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("Dropping websocket client", zap.Error(err))
			h.remove(c)
		}
	}
}

// Latest returns the most recent snapshot, if any tick has run.
func (h *Hub) Latest() (domain.Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.latest == nil {
		return domain.Snapshot{}, false
	}
	return *h.latest, true
}

func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("Websocket upgrade failed", zap.Error(err))
		return
	}

	h.writeMu.Lock()
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	latest := h.latest
	h.mu.Unlock()

	if latest != nil {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(latest); err != nil {
			h.writeMu.Unlock()
			h.remove(conn)
			return
		}
	}
	h.writeMu.Unlock()

	// Drain reads so close frames are handled.
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		conn.Close()
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*websocket.Conn]struct{})
	h.mu.Unlock()
	for c := range clients {
		c.Close()
	}
}
