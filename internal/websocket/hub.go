package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"geotagger-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub tracks the connected location-stream clients and fans frames out to
// them. A Redis channel mirrors broadcasts across instances; the instance id
// filters out our own mirrored messages.
type Hub struct {
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb        *redis.Client
	instanceId string

	logger logger.ILogger
}

const clusterChannel = "geotagger_cluster_events"

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID]*Client),
		rdb:        rdb,
		instanceId: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Id] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"client_id": client.Id})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.Id]; ok {
				delete(h.clients, client.Id)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"client_id": client.Id})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast pushes a frame to every connected client and mirrors it to the
// other instances via Redis.
func (h *Hub) Broadcast(frame interface{}) {
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal broadcast frame", map[string]interface{}{"error": err.Error()})
		return
	}

	h.sendToAll(data)

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"origin":  h.instanceId,
			"message": json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), clusterChannel, payload)
	}
}

// SendTo pushes a frame to one client. A full send buffer drops the client;
// the stream is latest-wins and a stalled reader must not back up the hub.
func (h *Hub) SendTo(clientId uuid.UUID, frame interface{}) {
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal frame", map[string]interface{}{"error": err.Error()})
		return
	}

	h.mu.RLock()
	client, ok := h.clients[clientId]
	h.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case client.Send <- data:
	default:
		h.logger.Warn("Hub", "Client send buffer full, dropping client", map[string]interface{}{"client_id": clientId})
		h.unregister <- client
	}
}

func (h *Hub) sendToAll(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			Origin  string          `json:"origin"`
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Malformed cluster message", map[string]interface{}{"error": err.Error()})
			continue
		}
		if payload.Origin == h.instanceId {
			continue
		}
		h.sendToAll(payload.Message)
	}
}
