package hub

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/saurabh1105/Socail-Connect/internal/event"
	"go.uber.org/zap"
)

// Client is one websocket subscriber of the live feed. The feed is
// server-to-client only; inbound frames are read solely to service
// pings and detect disconnects.
type Client struct {
	ID     string
	userID string
	conn   *websocket.Conn
	hub    *Hub
	egress chan event.FeedEvent

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func registerClient(userID string, conn *websocket.Conn, h *Hub) *Client {
	ctx, cancel := context.WithCancel(h.ctx)
	c := &Client{
		ID:     uuid.New().String(),
		userID: userID,
		conn:   conn,
		hub:    h,
		egress: make(chan event.FeedEvent, sendBufSize),
		ctx:    ctx,
		cancel: cancel,
	}

	select {
	case h.register <- c:
		go c.readLoop()
		go c.writeLoop()
		return c
	case <-time.After(registerTimeout):
		h.logger.Warn("feed client registration timed out", zap.String("client_id", c.ID))
		cancel()
		conn.Close()
		return nil
	}
}

func (c *Client) readLoop() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		default:
			c.Close()
		}
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
			) {
				c.hub.logger.Debug("feed client read error",
					zap.String("client_id", c.ID), zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return
		case ev, ok := <-c.egress:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(ev); err != nil {
				c.hub.logger.Debug("feed write failed",
					zap.String("client_id", c.ID), zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// SafeSend enqueues an event for the client. Returns false when the
// client is gone or its egress stays full past the timeout.
func (c *Client) SafeSend(ev event.FeedEvent, timeout time.Duration) bool {
	select {
	case <-c.ctx.Done():
		return false
	case c.egress <- ev:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (c *Client) Close() {
	c.once.Do(func() {
		c.cancel()
		close(c.egress)
	})
}
