package websocket

import (
	"context"
	"encoding/json"

	"geotagger-be/internal/pkg/logger"
	"geotagger-be/internal/service"
	"geotagger-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// Notifier bridges the in-process event bus to the hub: every event on the
// folder and mission topics is fanned out to all connected clients.
type Notifier struct {
	hub        *Hub
	busService service.IBusService
	logger     logger.ILogger
}

func NewNotifier(hub *Hub, busService service.IBusService, log logger.ILogger) *Notifier {
	return &Notifier{
		hub:        hub,
		busService: busService,
		logger:     log,
	}
}

// Run subscribes to the broadcast topics. It returns after wiring the
// consumers; they live until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context) error {
	topics := []string{
		events.TopicFolderCreated,
		events.TopicObjectiveCompleted,
		events.TopicMissionCompleted,
	}
	for _, topic := range topics {
		messages, err := n.busService.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		go n.consume(topic, messages)
	}
	return nil
}

func (n *Notifier) consume(topic string, messages <-chan *message.Message) {
	for msg := range messages {
		var envelope service.EventEnvelope
		if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
			n.logger.Warn("Notifier", "Malformed event payload", map[string]interface{}{
				"topic": topic,
				"error": err.Error(),
			})
			msg.Ack()
			continue
		}

		n.hub.Broadcast(map[string]interface{}{
			"type": topic,
			"data": envelope.Data,
			"at":   envelope.OccurredAt,
		})
		msg.Ack()
	}
}
