package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventBus publishes bridge notifications on in-process watermill topics.
// The relay (or anything else) subscribes to observe transfer intents and
// receipts.
type EventBus struct {
	pubSub *gochannel.GoChannel
}

func NewEventBus(bufferSize int64) *EventBus {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: bufferSize},
		watermill.NopLogger{},
	)
	return &EventBus{pubSub}
}

func (b *EventBus) Publish(topic string, payload any) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), buf)
	return b.pubSub.Publish(topic, msg)
}

func (b *EventBus) Subscribe(
	ctx context.Context, topic string,
) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}

func (b *EventBus) Close() error {
	return b.pubSub.Close()
}
