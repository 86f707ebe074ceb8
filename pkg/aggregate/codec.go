package aggregate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/pkg/eventstore"
)

var (
	ErrUnknownEventType    = errors.New("unknown event type")
	ErrEventDecoding       = errors.New("event payload does not match its type")
	ErrEventTypeRegistered = errors.New("event type already registered")
	ErrInvalidEventType    = errors.New("invalid event type")
)

type (
	// Codec maps wire tags to payload shapes of one aggregate kind's events.
	Codec[E Event] struct {
		decoders map[string]func(payload []byte) (E, error)
		newID    IDGenerator
	}

	CodecOption func(*codecConfig)

	codecConfig struct {
		newID IDGenerator
	}
)

func WithRecordIDGenerator(gen IDGenerator) CodecOption {
	return func(c *codecConfig) {
		c.newID = gen
	}
}

func NewCodec[E Event](opts ...CodecOption) *Codec[E] {
	cfg := codecConfig{newID: uuid.New}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Codec[E]{
		decoders: make(map[string]func([]byte) (E, error)),
		newID:    cfg.newID,
	}
}

// RegisterEvent binds the tag returned by a blank T to T's JSON shape.
func RegisterEvent[E Event, T any](c *Codec[E]) error {
	var blank T
	evt, ok := any(blank).(E)
	if !ok {
		return fmt.Errorf("%w: %T is not a member of %T", ErrInvalidEventType, blank, (*E)(nil))
	}

	eventType := evt.Type()
	if eventType == "" {
		return fmt.Errorf("%w: %T has empty tag", ErrInvalidEventType, blank)
	}
	if _, exists := c.decoders[eventType]; exists {
		return fmt.Errorf("%w: %s", ErrEventTypeRegistered, eventType)
	}

	c.decoders[eventType] = func(payload []byte) (E, error) {
		var decoded T
		decoder := json.NewDecoder(bytes.NewReader(payload))
		decoder.DisallowUnknownFields()
		err := decoder.Decode(&decoded)
		if err != nil {
			var empty E
			return empty, err
		}

		return any(decoded).(E), nil
	}
	return nil
}

func MustRegisterEvent[E Event, T any](c *Codec[E]) {
	err := RegisterEvent[E, T](c)
	if err != nil {
		panic(err)
	}
}

func (c *Codec[E]) Encode(evt E) (eventstore.Record, error) {
	eventType := evt.Type()
	if _, ok := c.decoders[eventType]; !ok {
		return eventstore.Record{}, fmt.Errorf("encode %T: %w: %s", evt, ErrUnknownEventType, eventType)
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return eventstore.Record{}, fmt.Errorf("encode %s: %w", eventType, err)
	}

	return eventstore.Record{
		ID:      c.newID(),
		Type:    eventType,
		Payload: payload,
	}, nil
}

func (c *Codec[E]) Decode(record eventstore.RecordedEvent) (E, error) {
	decode, ok := c.decoders[record.Type]
	if !ok {
		var empty E
		return empty, fmt.Errorf("decode event %s: %w: %s", record.ID, ErrUnknownEventType, record.Type)
	}

	evt, err := decode(record.Payload)
	if err != nil {
		var empty E
		return empty, fmt.Errorf("decode event %s: %w: %s: %w", record.ID, ErrEventDecoding, record.Type, err)
	}

	return evt, nil
}
