// Package live pushes alerts and relay transitions to websocket clients,
// e.g. the meter dashboard.
package live

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/monitor"
)

const (
	MessageTypeAlert = "alert"
	MessageTypeRelay = "relay"

	sendBufferSize = 64
)

type Message struct {
	Type      string `json:"type"`
	DeviceID  string `json:"deviceId"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Hub keeps the connected clients. A client with an empty device filter
// receives every device.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	now     func() time.Time
	logger  *zap.Logger
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		now:     time.Now,
		logger:  common.GetLoggerWith(common.LoggerNameLive),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
	h.logger.Info("Live client registered",
		zap.String("remote", c.remote),
		zap.String(common.LoggerFieldDeviceID, c.deviceID),
	)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		h.logger.Info("Live client unregistered", zap.String("remote", c.remote))
	}
}

func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast never blocks: a client whose buffer is full is dropped.
func (h *Hub) Broadcast(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if c.deviceID != "" && c.deviceID != msg.DeviceID {
			continue
		}
		select {
		case c.send <- data:
		default:
			h.logger.Warn("Live client send buffer full, removing", zap.String("remote", c.remote))
			delete(h.clients, c)
			close(c.send)
		}
	}
	return nil
}

func (h *Hub) NotifyAlert(deviceID string, a monitor.Alert) error {
	return h.Broadcast(Message{
		Type:      MessageTypeAlert,
		DeviceID:  deviceID,
		Timestamp: a.Timestamp.UnixMilli(),
		Payload:   a,
	})
}

func (h *Hub) ApplyRelay(deviceID string, d monitor.RelayDecision) error {
	return h.Broadcast(Message{
		Type:      MessageTypeRelay,
		DeviceID:  deviceID,
		Timestamp: h.now().UnixMilli(),
		Payload:   d,
	})
}
