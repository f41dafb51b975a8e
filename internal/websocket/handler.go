package websocket

import (
	"geotagger-be/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs upgrades a connection into a location-stream session.
func ServeWs(hub *Hub, streamService service.IStreamService, c *websocket.Conn) {
	client := &Client{
		Hub:           hub,
		Conn:          c,
		Id:            uuid.New(),
		Send:          make(chan []byte, 256),
		streamService: streamService,
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // runs on the handler goroutine
}
