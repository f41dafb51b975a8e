package handler

import (
	"geotagger-be/internal/pkg/logger"
	"geotagger-be/internal/service"
	internalWS "geotagger-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// StreamHandler owns the websocket endpoint of the location stream.
type StreamHandler struct {
	hub           *internalWS.Hub
	streamService service.IStreamService
	logger        logger.ILogger
}

func NewStreamHandler(hub *internalWS.Hub, streamService service.IStreamService, log logger.ILogger) *StreamHandler {
	return &StreamHandler{
		hub:           hub,
		streamService: streamService,
		logger:        log,
	}
}

func (h *StreamHandler) ServeWs(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("StreamHandler", "Starting location stream session", nil)
			internalWS.ServeWs(h.hub, h.streamService, conn)
			h.logger.Info("StreamHandler", "Location stream session ended", nil)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *StreamHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
