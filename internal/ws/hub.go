// Package ws pushes presence updates to connected clients over
// WebSocket. Uses github.com/coder/websocket - the modern,
// context-aware WebSocket library for Go.
package ws

import (
	"context"
	"sync"
	"time"

	"github.com/motmot/nexlink/backend/internal/store"
	"go.uber.org/zap"
)

// Frame is the wire format in both directions. Clients send
// {"type":"heartbeat"}; the hub pushes {"type":"presence","online":[...]}.
type Frame struct {
	Type   string   `json:"type"`
	Online []string `json:"online,omitempty"`
}

const (
	FrameHeartbeat = "heartbeat"
	FramePresence  = "presence"
)

// Hub tracks connected presence clients and broadcasts snapshots of
// who is online on a fixed cadence.
type Hub struct {
	store    *store.Store
	log      *zap.Logger
	interval time.Duration

	mu      sync.RWMutex
	clients map[*client]struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHub creates a hub that snapshots presence every interval.
func NewHub(st *store.Store, log *zap.Logger, interval time.Duration) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		store:    st,
		log:      log,
		interval: interval,
		clients:  make(map[*client]struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Run broadcasts presence snapshots until Shutdown. Call in a goroutine.
func (h *Hub) Run() {
	h.wg.Add(1)
	defer h.wg.Done()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return
		case <-ticker.C:
			h.broadcastPresence()
		}
	}
}

// Shutdown stops the broadcast loop and closes every connection.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.cancel()

	h.mu.Lock()
	for c := range h.clients {
		c.close()
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ActiveConnections reports the number of connected clients.
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	h.log.Info("presence client connected",
		zap.String("user_id", c.userID),
		zap.Int("active", n),
	)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()

	h.log.Info("presence client disconnected",
		zap.String("user_id", c.userID),
		zap.Int("active", n),
	)
}

// broadcastPresence pushes the current online set to every client. A
// client that cannot be written to is dropped.
func (h *Hub) broadcastPresence() {
	online := h.onlineUserIDs()
	frame := &Frame{Type: FramePresence, Online: online}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.send(h.ctx, frame); err != nil {
			h.log.Warn("presence push failed, dropping client",
				zap.String("user_id", c.userID),
				zap.Error(err),
			)
			h.unregister(c)
			c.close()
		}
	}
}

func (h *Hub) onlineUserIDs() []string {
	online := make([]string, 0)
	for _, u := range h.store.Users() {
		if h.store.IsUserOnline(u.ID) {
			online = append(online, u.ID)
		}
	}
	return online
}
