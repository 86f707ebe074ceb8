package aggregate

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidStateTransition is the family of command rejections caused by the current aggregate state.
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrUnknownCommand         = errors.New("unknown command")
	ErrUnknownEvent           = errors.New("unknown event")
	ErrMissingAggregateID     = errors.New("aggregate id is missing")
	ErrAggregateIDMismatch    = errors.New("aggregate id mismatch")
)

type (
	Event interface {
		// Type is the stable wire tag of the event.
		Type() string
		AggregateID() uuid.UUID
	}

	// Root is the capability set every event-sourced aggregate kind implements.
	// Process must not mutate the aggregate, Apply is the only mutation path.
	Root[C any, E Event] interface {
		ID() uuid.UUID
		Process(cmd C) ([]E, error)
		Apply(evt E) error
	}

	// Factory produces a blank aggregate without identity or state.
	Factory[A any] func() A

	IDGenerator func() uuid.UUID
)

func StreamName(kind string, id uuid.UUID) string {
	return fmt.Sprintf("%s_%s", kind, id)
}

func UnknownCommandError(cmd any) error {
	return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
}

func UnknownEventError(evt any) error {
	return fmt.Errorf("%w: %T", ErrUnknownEvent, evt)
}
