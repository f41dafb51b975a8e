package websocket

import (
	"context"
	"encoding/json"
	"time"

	"geotagger-be/internal/dto"
	"geotagger-be/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// Client is a middleman between one websocket connection and the hub.
type Client struct {
	Hub *Hub

	Conn *websocket.Conn

	// Id identifies this connection; one subscription per client.
	Id uuid.UUID

	// Buffered channel of outbound frames.
	Send chan []byte

	streamService service.IStreamService
}

// readPump pumps location frames from the websocket connection into the
// stream service and queues its responses for this client.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Hub", "Unexpected close", map[string]interface{}{
					"client_id": c.Id,
					"error":     err.Error(),
				})
			}
			break
		}

		var frame dto.LocationUpdateFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.Hub.SendTo(c.Id, dto.StreamErrorFrame{
				Type:    dto.FrameStreamError,
				Kind:    dto.StreamErrUnavailable,
				Message: "malformed frame",
			})
			continue
		}
		if frame.Type != dto.FrameLocationUpdate {
			continue
		}

		for _, out := range c.streamService.HandleLocation(context.Background(), frame) {
			c.Hub.SendTo(c.Id, out)
		}
	}
}

// writePump pumps frames from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
