package service

import (
	"context"
	"encoding/json"
	"time"

	"geotagger-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventEnvelope is the wire form events take on the in-process bus.
type EventEnvelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type IBusService interface {
	Publish(ctx context.Context, topic string, evt events.Event) error
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

type busService struct {
	pubSub *gochannel.GoChannel
}

func NewBusService(pubSub *gochannel.GoChannel) IBusService {
	return &busService{pubSub: pubSub}
}

func (b *busService) Publish(ctx context.Context, topic string, evt events.Event) error {
	envelope := EventEnvelope{
		Type:       evt.EventType(),
		Data:       evt.Payload(),
		OccurredAt: evt.Timestamp(),
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return b.pubSub.Publish(topic, msg)
}

func (b *busService) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}
