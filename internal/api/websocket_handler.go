package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/service/pubsub"
	"github.com/sellerhub/backoffice-api/internal/utils"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	conn   *websocket.Conn
	userID int64
	send   chan []byte
}

// WebSocketHandler streams sale updates to connected admin clients. Every
// client receives every sale, fanned out from the Redis sales channel.
type WebSocketHandler struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *logger.Logger
	pubsub     *pubsub.RedisPubSub
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewWebSocketHandler(logger *logger.Logger, pubsub *pubsub.RedisPubSub) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
		pubsub:     pubsub,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// StreamSales godoc
// @Summary Live sales feed over WebSocket
// @Tags sales
// @Security BearerAuth
// @Success 101
// @Router /sales/stream [get]
func (h *WebSocketHandler) StreamSales(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.NewErrorResponse(http.StatusUnauthorized, dto.ServiceFromPath(c.Request.URL.Path), "authentication required"))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, dto.ServiceFromPath(c.Request.URL.Path), "failed to upgrade connection"))
		return
	}

	client := &Client{
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	if err := h.pubsub.Subscribe(h.ctx, h.handlePubSubMessage); err != nil {
		h.logger.Errorf("Failed to subscribe to sales channel: %v", err)
	}

	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

func (h *WebSocketHandler) handlePubSubMessage(sale *dto.SaleResponse) {
	message, err := json.Marshal(sale)
	if err != nil {
		h.logger.Errorf("Error marshaling sale: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default: // Slow consumer, drop the client
			close(client.send)
			delete(h.clients, client)
		}
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client %d: %v", client.userID, err)
			}
			break
		}

		// Clients are not expected to send anything, log and ignore
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from client %d: %s", client.userID, string(message))
		}
	}
}
