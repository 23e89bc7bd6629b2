package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EventName is the custom event dispatched for toasts.
// The client runtime listens for this event name.
const EventName = "budgeteer:toast"

// Default tracer name for the notification pipeline.
const defaultTracerName = "budgeteer-notifications"

// HubConfig configures the WebSocket hub.
type HubConfig struct {
	// ReadTimeout is the per-message read deadline (default: 60s).
	ReadTimeout time.Duration

	// WriteTimeout is the per-message write deadline (default: 10s).
	WriteTimeout time.Duration

	// PingInterval is how often pings are sent. Must be shorter than
	// ReadTimeout (default: 30s).
	PingInterval time.Duration

	// SendBuffer is the per-client outbound queue size (default: 16).
	// A client that falls this far behind is disconnected.
	SendBuffer int

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// TracerName names the OpenTelemetry tracer.
	TracerName string

	// CheckOrigin overrides the upgrader's origin check.
	CheckOrigin func(r *http.Request) bool
}

func (c *HubConfig) applyDefaults() {
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 60 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.PingInterval <= 0 {
		c.PingInterval = 30 * time.Second
	}
	if c.SendBuffer <= 0 {
		c.SendBuffer = 16
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.TracerName == "" {
		c.TracerName = defaultTracerName
	}
}

// envelope is the outbound event frame.
type envelope struct {
	Event  string         `json:"event"`
	Detail map[string]any `json:"detail,omitempty"`
}

// inbound is the frame format the client runtime sends back.
type inbound struct {
	Event string `json:"event"`
	ID    uint64 `json:"id"`
}

// Hub fans toast events out to connected pages and routes dismissal
// reports back to a registered callback.
type Hub struct {
	config   HubConfig
	upgrader websocket.Upgrader
	logger   *slog.Logger
	tracer   trace.Tracer

	mu       sync.Mutex
	clients  map[*client]struct{}
	onHidden func(id uint64)
	closed   bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub with the given configuration.
func NewHub(config HubConfig) *Hub {
	config.applyDefaults()
	h := &Hub{
		config:  config,
		logger:  config.Logger,
		tracer:  otel.Tracer(config.TracerName),
		clients: make(map[*client]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     config.CheckOrigin,
	}
	return h
}

// OnHidden registers the callback invoked when a client reports a
// toast's hidden lifecycle event. Only one callback is held; the
// bridge registers itself here.
func (h *Hub) OnHidden(fn func(id uint64)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onHidden = fn
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and runs the client's read and write
// loops until the connection closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, h.config.SendBuffer),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("client connected", "remote", conn.RemoteAddr())

	go h.writeLoop(c)
	h.readLoop(c)
}

// Emit broadcasts a custom event to every connected client.
func (h *Hub) Emit(ctx context.Context, event string, detail map[string]any) {
	_, span := h.tracer.Start(ctx, "notifications.emit",
		trace.WithAttributes(
			attribute.String("notifications.event", event),
		))
	defer span.End()

	msg, err := json.Marshal(envelope{Event: event, Detail: detail})
	if err != nil {
		h.logger.Error("event marshal failed", "event", event, "error", err)
		return
	}

	// Sends happen under the hub lock so no queue is closed while a
	// broadcast is in flight.
	h.mu.Lock()
	span.SetAttributes(attribute.Int("notifications.clients", len(h.clients)))
	var slow []*client
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	for _, c := range slow {
		// Slow consumer; drop the connection rather than block.
		h.logger.Warn("client send buffer full, disconnecting",
			"remote", c.conn.RemoteAddr())
		h.unregisterLocked(c)
	}
	h.mu.Unlock()
}

// Close disconnects all clients and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		h.unregisterLocked(c)
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.unregisterLocked(c)
}

// unregisterLocked removes the client and tears down its connection.
// Caller holds h.mu; the queue close is safe because Emit also sends
// under the lock.
func (h *Hub) unregisterLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	c.conn.Close()
}

// readLoop processes inbound frames until the connection closes.
func (h *Hub) readLoop(c *client) {
	defer h.unregister(c)

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(h.config.ReadTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(h.config.ReadTimeout))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				h.logger.Error("read error", "error", err)
			}
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(h.config.ReadTimeout))

		var frame inbound
		if err := json.Unmarshal(msg, &frame); err != nil {
			h.logger.Warn("frame decode error", "error", err)
			continue
		}

		switch frame.Event {
		case "hidden":
			h.dispatchHidden(frame.ID)
		default:
			h.logger.Warn("unknown frame event", "event", frame.Event)
		}
	}
}

func (h *Hub) dispatchHidden(id uint64) {
	h.mu.Lock()
	fn := h.onHidden
	h.mu.Unlock()
	if fn != nil {
		fn(id)
	}
}

// writeLoop flushes the client's send queue and keeps the connection
// alive with pings.
func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(h.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				c.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(h.config.WriteTimeout))
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(h.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.unregister(c)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(h.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.unregister(c)
				return
			}
		}
	}
}
