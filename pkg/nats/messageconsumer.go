package nats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/marcodiri/micros-chess/pkg/log"
	"github.com/marcodiri/micros-chess/pkg/message"
)

const (
	fetchBatchSize = 10
	fetchMaxWait   = time.Second
)

type contextKey int

const natsMessageContextKey contextKey = iota

var errMissingNATSMessage = errors.New("consumer message has no nats message")

type messageConsumer struct {
	name   string
	topic  message.Topic
	sub    *nats.Subscription
	logger log.Logger

	onceDoer   sync.Once
	onceCloser sync.Once
	stop       chan struct{}
	messages   chan *message.ConsumerMessage
}

func newMessageConsumer(
	sub *nats.Subscription,
	topic message.Topic,
	subscriber message.SubscriberName,
	logger log.Logger,
) *messageConsumer {
	return &messageConsumer{
		name:     fmt.Sprintf("%s/%s", subscriber, topic),
		topic:    topic,
		sub:      sub,
		logger:   logger,
		stop:     make(chan struct{}),
		messages: make(chan *message.ConsumerMessage),
	}
}

func (c *messageConsumer) Name() string {
	return c.name
}

func (c *messageConsumer) Messages() <-chan *message.ConsumerMessage {
	c.onceDoer.Do(func() {
		go c.fetch()
	})
	return c.messages
}

func (c *messageConsumer) fetch() {
	defer close(c.messages)

	for {
		select {
		case <-c.stop:
			return
		default:
		}

		msgs, err := c.sub.Fetch(fetchBatchSize, nats.MaxWait(fetchMaxWait))
		switch {
		case errors.Is(err, nats.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
			continue
		case errors.Is(err, nats.ErrBadSubscription), errors.Is(err, nats.ErrConnectionClosed):
			return
		case err != nil:
			c.logger.WithError(err).WithField("consumer", c.name).Warn(context.Background(), "nats fetch failed")
			continue
		}

		for _, msg := range msgs {
			consumerMsg, ok := c.toConsumerMessage(msg)
			if !ok {
				_ = msg.Term()
				continue
			}

			select {
			case c.messages <- consumerMsg:
			case <-c.stop:
				_ = msg.Nak()
				return
			}
		}
	}
}

func (c *messageConsumer) toConsumerMessage(msg *nats.Msg) (*message.ConsumerMessage, bool) {
	messageID, err := uuid.Parse(msg.Header.Get(nats.MsgIdHdr))
	if err != nil {
		return nil, false
	}

	return &message.ConsumerMessage{
		Context: context.WithValue(context.Background(), natsMessageContextKey, msg),
		Message: message.Message{
			ID:      messageID,
			Topic:   c.topic,
			Key:     msg.Header.Get(messageKeyHeader),
			Payload: msg.Data,
		},
	}, true
}

func (c *messageConsumer) Ack(msg *message.ConsumerMessage) error {
	natsMsg, ok := msg.Context.Value(natsMessageContextKey).(*nats.Msg)
	if !ok {
		return errMissingNATSMessage
	}

	return natsMsg.Ack()
}

func (c *messageConsumer) Nack(msg *message.ConsumerMessage) error {
	natsMsg, ok := msg.Context.Value(natsMessageContextKey).(*nats.Msg)
	if !ok {
		return errMissingNATSMessage
	}

	return natsMsg.Nak()
}

// Close unsubscribes without deleting the durable consumer, it was created outside the subscription.
func (c *messageConsumer) Close() error {
	var err error
	c.onceCloser.Do(func() {
		close(c.stop)
		err = c.sub.Unsubscribe()
	})
	return err
}

func durableName(subscriber message.SubscriberName, subject string) string {
	return strings.NewReplacer(".", "_", "*", "_", ">", "_", " ", "_").Replace(fmt.Sprintf("%s_%s", subscriber, subject))
}
