package pubsub_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/unft/unftd/internal/core/domain"
	"github.com/unft/unftd/internal/infrastructure/pubsub"
)

func TestEventBus(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	bus := pubsub.NewEventBus(8)
	defer bus.Close()

	msgs, err := bus.Subscribe(ctx, domain.TopicTransferInitiated)
	require.NoError(t, err)

	event := domain.TransferInitiatedEvent{
		Mint:               "mint-1",
		Owner:              "alice",
		DestinationChainID: 1,
		RecipientAddress:   []byte{0xaa},
		Nonce:              7,
		Timestamp:          100,
	}
	require.NoError(t, bus.Publish(domain.TopicTransferInitiated, event))

	select {
	case msg := <-msgs:
		var got domain.TransferInitiatedEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		require.Equal(t, event, got)
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("timed out waiting for event")
	}
}

func TestEventBusRejectsUnserializablePayload(t *testing.T) {
	bus := pubsub.NewEventBus(1)
	defer bus.Close()

	err := bus.Publish(domain.TopicTransferInitiated, func() {})
	require.Error(t, err)
}
