package hub

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saurabh1105/Socail-Connect/internal/event"
	"go.uber.org/zap"
)

var (
	// tuning parameters
	writeWait       = 10 * time.Second    // time allowed to write a message to the peer
	pongWait        = 20 * time.Second    // time allowed to read the next pong message from the peer
	pingInterval    = (pongWait * 9) / 10 // send pings to peer with this period
	sendBufSize     = 256                 // per-connection outbound buffer size
	broadcastBuf    = 1024                // hub broadcast channel buffer
	sendTimeout     = 2 * time.Second     // timeout for enqueuing outbound events
	registerTimeout = 5 * time.Second     // timeout for client registration
)

// Hub fans out feed events to every connected websocket client. It is
// a single broadcast room: all authenticated clients see all events.
type Hub struct {
	clients    map[*Client]struct{}
	clientsMu  sync.RWMutex
	register   chan *Client
	unregister chan *Client
	broadcast  chan event.FeedEvent
	ctx        context.Context
	cancel     context.CancelFunc
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		broadcast:  make(chan event.FeedEvent, broadcastBuf),
		ctx:        ctx,
		cancel:     cancel,
		logger:     logger,
	}

	go h.run()
	return h
}

// Publish enqueues an event for broadcast. Never blocks the caller: a
// full broadcast queue drops the event, the feed is best-effort.
func (h *Hub) Publish(ev event.FeedEvent) {
	select {
	case h.broadcast <- ev:
	default:
		h.logger.Warn("feed broadcast queue full, dropping event", zap.String("event", ev.Event))
	}
}

func (h *Hub) run() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case c := <-h.register:
			h.addClient(c)
		case c := <-h.unregister:
			h.removeClient(c)
		case ev := <-h.broadcast:
			h.deliver(ev)
		}
	}
}

func (h *Hub) addClient(c *Client) {
	h.clientsMu.Lock()
	h.clients[c] = struct{}{}
	h.clientsMu.Unlock()
	h.logger.Info("feed client registered",
		zap.String("client_id", c.ID), zap.String("user_id", c.userID))
}

func (h *Hub) removeClient(c *Client) {
	h.clientsMu.Lock()
	_, exists := h.clients[c]
	delete(h.clients, c)
	h.clientsMu.Unlock()

	if exists {
		c.Close()
		h.logger.Info("feed client removed", zap.String("client_id", c.ID))
	}
}

func (h *Hub) deliver(ev event.FeedEvent) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	// deliver without holding the lock; a stuck client gets kicked
	for _, c := range clients {
		if !c.SafeSend(ev, sendTimeout) {
			h.logger.Warn("egress full, disconnecting feed client", zap.String("client_id", c.ID))
			select {
			case h.unregister <- c:
			default:
				h.removeClient(c)
			}
		}
	}
}

// Stop closes all client connections and halts the manager loop.
func (h *Hub) Stop() {
	h.cancel()

	h.clientsMu.Lock()
	for c := range h.clients {
		c.Close()
	}
	h.clients = make(map[*Client]struct{})
	h.clientsMu.Unlock()
}

var websocketUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request and registers the connection for the
// authenticated user.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := websocketUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	registerClient(userID, conn, h)
}
