package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

var ErrHubBusy = errors.New("websocket hub queue is full")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// доступ проверяется API-ключом до апгрейда
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message - кадр, который получает клиент панели мониторинга
type Message struct {
	Type string            `json:"type"`
	Data models.AlertEvent `json:"data"`
}

// Client - подключение панели мониторинга. Пустой entityID означает подписку на все тревоги.
type Client struct {
	id       string
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	entityID string
}

// Hub рассылает тревоги подключенным websocket-клиентам
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan models.AlertEvent
	done       chan struct{}
	logger     *logrus.Logger
	mu         sync.RWMutex
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan models.AlertEvent, 256),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Name() string {
	return "websocket"
}

// Run обслуживает регистрацию клиентов и рассылку до отмены ctx
func (h *Hub) Run(ctx context.Context) {
	defer h.closeAll()
	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.WithFields(logrus.Fields{
				"client_id": client.id,
				"entity_id": client.entityID,
				"clients":   total,
			}).Info("Dashboard client connected")

		case client := <-h.unregister:
			h.remove(client)

		case event := <-h.broadcast:
			h.fanout(event)
		}
	}
}

// Notify ставит событие в очередь рассылки и не блокирует вызывающего
func (h *Hub) Notify(ctx context.Context, event models.AlertEvent) error {
	select {
	case h.broadcast <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrHubBusy
	}
}

// ClientCount возвращает число подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS переводит HTTP-запрос в websocket и подписывает клиента
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, entityID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		id:       uuid.NewString(),
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		entityID: entityID,
	}

	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return errors.New("websocket hub is stopped")
	}

	go client.writePump()
	go client.readPump()
	return nil
}

func (h *Hub) fanout(event models.AlertEvent) {
	data, err := json.Marshal(Message{Type: "alert", Data: event})
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal alert for websocket")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if client.entityID != "" && client.entityID != event.EntityID {
			continue
		}
		select {
		case client.send <- data:
		default:
			// медленный клиент отключается, чтобы не задерживать остальных
			delete(h.clients, client)
			close(client.send)
			h.logger.WithField("client_id", client.id).Warn("Dropping slow dashboard client")
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.logger.WithField("client_id", client.id).Info("Dashboard client disconnected")
	}
}

func (h *Hub) closeAll() {
	close(h.done)
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
}

// readPump читает только управляющие кадры и отслеживает разрыв соединения
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.WithError(err).WithField("client_id", c.id).Debug("Websocket read error")
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
