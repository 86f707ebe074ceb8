package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"

	"github.com/marcodiri/micros-chess/pkg/log"
	"github.com/marcodiri/micros-chess/pkg/message"
)

const (
	defaultConnectionTimeout = 20 * time.Second

	eventsStreamName = "EVENTS"
	eventsSubjects   = "event-type.>"

	messageKeyHeader = "Message-Key"
)

type Config struct {
	Address           string
	ConnectionTimeout time.Duration
}

// MessageBroker publishes topics as JetStream subjects, see message.Topic.Subject.
type MessageBroker struct {
	conn   *nats.Conn
	js     nats.JetStreamContext
	logger log.Logger
}

func NewMessageBroker(config *Config, logger log.Logger) (*MessageBroker, error) {
	connTimeout := defaultConnectionTimeout
	if config.ConnectionTimeout > 0 {
		connTimeout = config.ConnectionTimeout
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = connTimeout / 4
	eb.MaxElapsedTime = connTimeout

	var conn *nats.Conn
	err := backoff.Retry(func() error {
		var err error
		conn, err = nats.Connect(
			fmt.Sprintf("nats://%s", config.Address),
			nats.Name("micros-chess"),
			nats.ErrorHandler(func(_ *nats.Conn, sub *nats.Subscription, err error) {
				entry := logger.WithError(err)
				if sub != nil {
					entry = entry.WithField("subject", sub.Subject)
				}
				entry.Error(context.Background(), "nats async error")
			}),
		)
		return err
	}, eb)
	if err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("get jetstream context: %w", err)
	}

	err = ensureEventsStream(js)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ensure %s stream: %w", eventsStreamName, err)
	}

	return &MessageBroker{
		conn:   conn,
		js:     js,
		logger: logger,
	}, nil
}

func ensureEventsStream(js nats.JetStreamContext) error {
	_, err := js.StreamInfo(eventsStreamName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, nats.ErrStreamNotFound) {
		return err
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:      eventsStreamName,
		Subjects:  []string{eventsSubjects},
		Retention: nats.LimitsPolicy,
		Storage:   nats.FileStorage,
		Replicas:  1,
	})
	return err
}

func (b *MessageBroker) Produce(ctx context.Context, msg *message.Message) error {
	natsMsg := nats.NewMsg(msg.Topic.Subject())
	natsMsg.Data = msg.Payload
	natsMsg.Header.Set(nats.MsgIdHdr, msg.ID.String())
	natsMsg.Header.Set(messageKeyHeader, msg.Key)

	_, err := b.js.PublishMsg(natsMsg, nats.Context(ctx))
	if err != nil {
		return fmt.Errorf("publish message to %s: %w", natsMsg.Subject, err)
	}

	return nil
}

// Consumer binds to a durable pull consumer named after the subscriber, so closing it keeps the position.
// Every subscriber instance shares the durable, which makes single and shared consumption equal.
func (b *MessageBroker) Consumer(
	topic message.Topic,
	subscriber message.SubscriberName,
	_ message.ConsumptionType,
) (message.Consumer, error) {
	subject := topic.Subject()
	durable := durableName(subscriber, subject)

	_, err := b.js.ConsumerInfo(eventsStreamName, durable)
	if errors.Is(err, nats.ErrConsumerNotFound) {
		_, err = b.js.AddConsumer(eventsStreamName, &nats.ConsumerConfig{
			Durable:       durable,
			FilterSubject: subject,
			AckPolicy:     nats.AckExplicitPolicy,
			DeliverPolicy: nats.DeliverAllPolicy,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("ensure consumer %s: %w", durable, err)
	}

	sub, err := b.js.PullSubscribe(subject, durable, nats.Bind(eventsStreamName, durable))
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s by %s: %w", subject, subscriber, err)
	}

	return newMessageConsumer(sub, topic, subscriber, b.logger), nil
}

func (b *MessageBroker) Close() {
	err := b.conn.Drain()
	if err != nil {
		b.conn.Close()
	}
}
