//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Consumer=Consumer,ConsumerProvider=ConsumerProvider,Producer=Producer,Broker=Broker"
package message

import "context"

const (
	ConsumptionTypeSingle ConsumptionType = "single"
	ConsumptionTypeShared ConsumptionType = "shared"
)

type (
	ConsumerMessage struct {
		Context context.Context
		Message Message
	}

	Consumer interface {
		Name() string
		Messages() <-chan *ConsumerMessage
		Ack(msg *ConsumerMessage) error
		Nack(msg *ConsumerMessage) error
		Close() error
	}

	ConsumerProvider interface {
		Consumer(Topic, SubscriberName, ConsumptionType) (Consumer, error)
	}

	Producer interface {
		Produce(ctx context.Context, msg *Message) error
	}

	Broker interface {
		ConsumerProvider
		Producer
		Close()
	}

	SubscriberName  string
	ConsumptionType string
)
