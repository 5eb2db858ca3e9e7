package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"hangout-api/internal/database"
	"hangout-api/internal/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	clientBuffer   = 16
	maxMessageSize = 512
)

// liveClient is one websocket subscriber of a hangout's event feed
type liveClient struct {
	conn *websocket.Conn
	send chan []byte
}

// liveRoom fans a hangout's events out to its subscribers. Each room holds
// one Redis subscription that lives as long as the room has clients.
type liveRoom struct {
	clients map[*liveClient]bool
	cancel  context.CancelFunc
}

// LiveFeedHub manages per-hangout websocket rooms. Clients receive the
// vote_cast, consensus_reached and rsvp_recorded events published by the
// services.
type LiveFeedHub struct {
	mu     sync.Mutex
	rooms  map[string]*liveRoom
	logger *zap.Logger
}

// NewLiveFeedHub creates a new hub
func NewLiveFeedHub(logger *zap.Logger) *LiveFeedHub {
	return &LiveFeedHub{
		rooms:  make(map[string]*liveRoom),
		logger: logger,
	}
}

// join registers a client, creating the room and its Redis subscription on
// first join
func (h *LiveFeedHub) join(hangoutID string, client *liveClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[hangoutID]
	if !ok {
		ctx, cancel := context.WithCancel(context.Background())
		room = &liveRoom{
			clients: make(map[*liveClient]bool),
			cancel:  cancel,
		}
		h.rooms[hangoutID] = room
		go h.relay(ctx, hangoutID)
	}
	room.clients[client] = true
}

// leave unregisters a client and tears the room down when it empties
func (h *LiveFeedHub) leave(hangoutID string, client *liveClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[hangoutID]
	if !ok {
		return
	}
	if room.clients[client] {
		delete(room.clients, client)
		close(client.send)
	}
	if len(room.clients) == 0 {
		room.cancel()
		delete(h.rooms, hangoutID)
	}
}

// broadcast delivers a payload to every client in the room. Slow clients
// are dropped rather than allowed to block the feed.
func (h *LiveFeedHub) broadcast(hangoutID string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[hangoutID]
	if !ok {
		return
	}
	for client := range room.clients {
		select {
		case client.send <- payload:
		default:
			delete(room.clients, client)
			close(client.send)
		}
	}
}

// relay forwards the hangout's Redis channel into the room until the room
// closes. Without Redis the feed degrades to a no-op.
func (h *LiveFeedHub) relay(ctx context.Context, hangoutID string) {
	redisClient := database.GetRedis()
	if redisClient == nil {
		h.logger.Warn("Live feed running without Redis; no events will be relayed",
			zap.String("hangout_id", hangoutID),
		)
		return
	}

	sub := redisClient.Subscribe(ctx, database.HangoutChannel(hangoutID))
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast(hangoutID, []byte(msg.Payload))
		case <-ctx.Done():
			return
		}
	}
}

// WSHandler upgrades clients onto the live event feed of a hangout
type WSHandler struct {
	hub    *LiveFeedHub
	logger *zap.Logger
}

func NewWSHandler(hub *LiveFeedHub, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		logger: logger,
	}
}

// Subscribe godoc
// @Summary      Subscribe to the live event feed
// @Description  Upgrades the connection to a websocket streaming vote tallies, consensus and RSVP events for the hangout
// @Tags         live
// @Param        hangoutId path string true "Hangout ID (UUID)"
// @Success      101 {string} string "Switching Protocols"
// @Failure      400 {object} response.ErrorResponse "Invalid hangout ID"
// @Router       /{hangoutId}/live [get]
func (h *WSHandler) Subscribe(c *gin.Context) {
	hangoutID, err := uuid.Parse(c.Param("hangoutId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid hangout ID")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	client := &liveClient{
		conn: conn,
		send: make(chan []byte, clientBuffer),
	}
	h.hub.join(hangoutID.String(), client)

	go h.writePump(hangoutID.String(), client)
	h.readPump(hangoutID.String(), client)
}

// writePump drains the client's send channel onto the connection
func (h *WSHandler) writePump(hangoutID string, client *liveClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound messages; the feed is one-way. It exists to
// notice the peer closing the connection.
func (h *WSHandler) readPump(hangoutID string, client *liveClient) {
	defer func() {
		h.hub.leave(hangoutID, client)
		client.conn.Close()
	}()

	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}
