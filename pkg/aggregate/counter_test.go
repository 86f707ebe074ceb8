package aggregate_test

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/pkg/aggregate"
)

const counterKind = "Counter"

type (
	counterEvent interface {
		aggregate.Event
		isCounterEvent()
	}

	counterOpened struct {
		CounterID uuid.UUID `json:"counterId"`
	}

	counterIncremented struct {
		CounterID uuid.UUID `json:"counterId"`
		By        int       `json:"by"`
	}

	// counterReset is registered in the codec but never handled by Apply.
	counterReset struct {
		CounterID uuid.UUID `json:"counterId"`
	}

	counterCommand interface {
		isCounterCommand()
	}

	openCounter       struct{ id uuid.UUID }
	incrementCounter  struct{ by int }
	resetCounter      struct{}
	touchCounter      struct{}
	reopenCounterWith struct{ id uuid.UUID }

	counter struct {
		id    uuid.UUID
		value int
		open  bool
	}
)

func (counterOpened) Type() string { return "counter-opened" }
func (e counterOpened) AggregateID() uuid.UUID { return e.CounterID }
func (counterOpened) isCounterEvent() {}
func (counterIncremented) Type() string { return "counter-incremented" }
func (e counterIncremented) AggregateID() uuid.UUID { return e.CounterID }
func (counterIncremented) isCounterEvent() {}
func (counterReset) Type() string { return "counter-reset" }
func (e counterReset) AggregateID() uuid.UUID { return e.CounterID }
func (counterReset) isCounterEvent() {}

func (openCounter) isCounterCommand() {}
func (incrementCounter) isCounterCommand() {}
func (resetCounter) isCounterCommand() {}
func (touchCounter) isCounterCommand() {}
func (reopenCounterWith) isCounterCommand() {}

func newCounter() *counter {
	return &counter{}
}

func (c *counter) ID() uuid.UUID {
	return c.id
}

func (c *counter) Process(cmd counterCommand) ([]counterEvent, error) {
	switch cmd := cmd.(type) {
	case openCounter:
		return []counterEvent{counterOpened{CounterID: cmd.id}}, nil
	case incrementCounter:
		if !c.open {
			return nil, fmt.Errorf("%w: counter is not open", aggregate.ErrInvalidStateTransition)
		}
		return []counterEvent{
			counterIncremented{CounterID: c.id, By: cmd.by},
		}, nil
	case resetCounter:
		return []counterEvent{counterReset{CounterID: c.id}}, nil
	case touchCounter:
		return nil, nil
	case reopenCounterWith:
		return []counterEvent{counterOpened{CounterID: cmd.id}}, nil
	default:
		return nil, aggregate.UnknownCommandError(cmd)
	}
}

func (c *counter) Apply(evt counterEvent) error {
	switch evt := evt.(type) {
	case counterOpened:
		c.id = evt.CounterID
		c.open = true
	case counterIncremented:
		c.value += evt.By
	default:
		return aggregate.UnknownEventError(evt)
	}

	return nil
}

func newCounterCodec() *aggregate.Codec[counterEvent] {
	codec := aggregate.NewCodec[counterEvent]()
	aggregate.MustRegisterEvent[counterEvent, counterOpened](codec)
	aggregate.MustRegisterEvent[counterEvent, counterIncremented](codec)
	aggregate.MustRegisterEvent[counterEvent, counterReset](codec)
	return codec
}
