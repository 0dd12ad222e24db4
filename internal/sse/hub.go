// Package sse streams farm lifecycle events to connected clients as
// server-sent events.
package sse

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Client is one connected stream
type Client struct {
	ID           string
	FarmID       string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events
}

func (c *Client) wants(e Event) bool {
	if c.FarmID != e.FarmID {
		return false
	}
	return c.EventFilter == nil || c.EventFilter[e.Type]
}

// Hub fans broadcast events out to the clients watching each farm
type Hub struct {
	clients   map[string]*Client
	broadcast chan Event
	mu        sync.RWMutex
	shutdown  chan struct{}
	stopOnce  sync.Once
	stopped   bool
	wg        sync.WaitGroup
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		broadcast: make(chan Event, BroadcastBufferSize),
		shutdown:  make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the broadcast loop and closes every client channel, which ends
// their streams. It is safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		h.stopped = true
		for _, client := range h.clients {
			close(client.EventChannel)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(event) {
					continue
				}
				// slow clients miss events rather than stall the hub
				select {
				case client.EventChannel <- event:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client watching farmID. An empty eventTypes receives
// every event of the farm. After Stop the returned client's channel is
// already closed.
func (h *Hub) Register(farmID string, eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.NewString(),
		FarmID:       farmID,
		EventChannel: make(chan Event, ClientEventBuffer),
	}

	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		close(client.EventChannel)
		return client
	}
	h.clients[client.ID] = client
	return client
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.EventChannel)
		delete(h.clients, clientID)
	}
}

// Broadcast queues an event for the clients watching farmID
func (h *Hub) Broadcast(farmID, eventType string, payload interface{}, at time.Time) {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		FarmID:    farmID,
		Timestamp: at.UnixMilli(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
	default:
		slog.Warn(LogMsgEventDropped, "farm_id", farmID, "event_type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an event for transmission:
// "id: <id>\nevent: <type>\ndata: <json>\n\n"
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	msg := make([]byte, 0, len(data)+len(event.ID)+len(event.Type)+24)
	msg = append(msg, "id: "+event.ID+"\n"...)
	msg = append(msg, "event: "+event.Type+"\n"...)
	msg = append(msg, "data: "...)
	msg = append(msg, data...)
	msg = append(msg, "\n\n"...)
	return msg, nil
}
