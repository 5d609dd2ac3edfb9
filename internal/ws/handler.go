package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// client is one WebSocket connection. Writes are serialized by wmu so
// the broadcast loop and the close path do not interleave frames.
type client struct {
	userID string
	conn   *websocket.Conn

	wmu       sync.Mutex
	closeOnce sync.Once
}

func (c *client) send(ctx context.Context, frame *Frame) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	wctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return wsjson.Write(wctx, c.conn, frame)
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		_ = c.conn.Close(websocket.StatusNormalClosure, "bye")
	})
}

// HandleWebSocket upgrades GET /ws/presence?userId=... and serves the
// connection until the peer goes away. Heartbeat frames refresh the
// user's last-active timestamp; presence snapshots arrive on the hub's
// cadence.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		if u := h.store.CurrentUser(); u != nil {
			userID = u.ID
		}
	}
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_user_id"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
		CompressionMode:    websocket.CompressionContextTakeover,
	})
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{userID: userID, conn: conn}
	h.register(cl)
	defer func() {
		h.unregister(cl)
		cl.close()
	}()

	// Mark the user active immediately so they show up in the next
	// snapshot without waiting for a heartbeat frame.
	h.store.Heartbeat(userID)

	h.readLoop(cl)
}

func (h *Hub) readLoop(cl *client) {
	for {
		var frame Frame
		if err := wsjson.Read(h.ctx, cl.conn, &frame); err != nil {
			return
		}

		switch frame.Type {
		case FrameHeartbeat:
			h.store.Heartbeat(cl.userID)
		default:
			h.log.Debug("ignoring unknown frame type",
				zap.String("type", frame.Type),
				zap.String("user_id", cl.userID),
			)
		}
	}
}
