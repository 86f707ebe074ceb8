package pulsar

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/pkg/message"
)

type contextKey int

const pulsarMessageIDContextKey contextKey = iota

var errMissingMessageID = errors.New("consumer message has no pulsar message id")

type messageConsumer struct {
	name   string
	pulsar pulsar.Consumer

	onceDoer sync.Once
	messages chan *message.ConsumerMessage
}

func newMessageConsumer(pulsarConsumer pulsar.Consumer, topic message.Topic) *messageConsumer {
	return &messageConsumer{
		name:     fmt.Sprintf("%s/%s", pulsarConsumer.Subscription(), topic),
		pulsar:   pulsarConsumer,
		messages: make(chan *message.ConsumerMessage),
	}
}

func (c *messageConsumer) Name() string {
	return c.name
}

// Messages skips the messages produced outside of the broker, they carry no message id property.
func (c *messageConsumer) Messages() <-chan *message.ConsumerMessage {
	c.onceDoer.Do(func() {
		go c.forward()
	})
	return c.messages
}

func (c *messageConsumer) forward() {
	defer close(c.messages)

	for msg := range c.pulsar.Chan() {
		messageID, err := uuid.Parse(msg.Properties()[messageIDPropertyName])
		if err != nil {
			_ = c.pulsar.Ack(msg.Message)
			continue
		}

		c.messages <- &message.ConsumerMessage{
			Context: context.WithValue(context.Background(), pulsarMessageIDContextKey, msg.ID()),
			Message: message.Message{
				ID:      messageID,
				Topic:   message.Topic(msg.Topic()),
				Key:     msg.Key(),
				Payload: msg.Payload(),
			},
		}
	}
}

func (c *messageConsumer) Ack(msg *message.ConsumerMessage) error {
	messageID, ok := msg.Context.Value(pulsarMessageIDContextKey).(pulsar.MessageID)
	if !ok {
		return errMissingMessageID
	}

	return c.pulsar.AckID(messageID)
}

func (c *messageConsumer) Nack(msg *message.ConsumerMessage) error {
	messageID, ok := msg.Context.Value(pulsarMessageIDContextKey).(pulsar.MessageID)
	if !ok {
		return errMissingMessageID
	}

	c.pulsar.NackID(messageID)
	return nil
}

func (c *messageConsumer) Close() error {
	c.pulsar.Close()
	return nil
}
