package aggregate_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodiri/micros-chess/pkg/aggregate"
	"github.com/marcodiri/micros-chess/pkg/eventstore"
)

type (
	untaggedEvent    struct{}
	notACounterEvent struct{}
)

func (untaggedEvent) Type() string { return "" }
func (untaggedEvent) AggregateID() uuid.UUID { return uuid.Nil }
func (untaggedEvent) isCounterEvent() {}

func TestRegisterEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		register func(c *aggregate.Codec[counterEvent]) error
		expected error
	}{
		{
			name: "duplicate tag",
			register: func(c *aggregate.Codec[counterEvent]) error {
				return aggregate.RegisterEvent[counterEvent, counterOpened](c)
			},
			expected: aggregate.ErrEventTypeRegistered,
		},
		{
			name: "empty tag",
			register: func(c *aggregate.Codec[counterEvent]) error {
				return aggregate.RegisterEvent[counterEvent, untaggedEvent](c)
			},
			expected: aggregate.ErrInvalidEventType,
		},
		{
			name: "type outside of the event family",
			register: func(c *aggregate.Codec[counterEvent]) error {
				return aggregate.RegisterEvent[counterEvent, notACounterEvent](c)
			},
			expected: aggregate.ErrInvalidEventType,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.register(newCounterCodec())
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestCodec_EncodeDecode(t *testing.T) {
	t.Parallel()

	recordID := uuid.MustParse("7a1d5b1e-0000-4000-8000-000000000001")
	codec := aggregate.NewCodec[counterEvent](aggregate.WithRecordIDGenerator(func() uuid.UUID { return recordID }))
	aggregate.MustRegisterEvent[counterEvent, counterIncremented](codec)

	counterID := uuid.New()
	record, err := codec.Encode(counterIncremented{CounterID: counterID, By: 3})
	require.NoError(t, err)
	assert.Equal(t, recordID, record.ID)
	assert.Equal(t, "counter-incremented", record.Type)
	assert.JSONEq(t, `{"counterId":"`+counterID.String()+`","by":3}`, string(record.Payload))

	evt, err := codec.Decode(eventstore.RecordedEvent{Record: record})
	require.NoError(t, err)
	assert.Equal(t, counterIncremented{CounterID: counterID, By: 3}, evt)
}

func TestCodec_EncodeUnregisteredType(t *testing.T) {
	t.Parallel()

	codec := aggregate.NewCodec[counterEvent]()
	_, err := codec.Encode(counterOpened{CounterID: uuid.New()})
	require.ErrorIs(t, err, aggregate.ErrUnknownEventType)
}

func TestCodec_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record eventstore.Record
		expect func(t *testing.T, evt counterEvent, err error)
	}{
		{
			name:   "unknown tag",
			record: eventstore.Record{ID: uuid.New(), Type: "counter-deleted", Payload: []byte(`{}`)},
			expect: func(t *testing.T, _ counterEvent, err error) {
				require.ErrorIs(t, err, aggregate.ErrUnknownEventType)
			},
		},
		{
			name:   "payload of wrong shape",
			record: eventstore.Record{ID: uuid.New(), Type: "counter-incremented", Payload: []byte(`{"by":"three"}`)},
			expect: func(t *testing.T, _ counterEvent, err error) {
				require.ErrorIs(t, err, aggregate.ErrEventDecoding)
			},
		},
		{
			name:   "payload with unexpected field",
			record: eventstore.Record{ID: uuid.New(), Type: "counter-opened", Payload: []byte(`{"counterId":"` + uuid.NewString() + `","owner":"x"}`)},
			expect: func(t *testing.T, _ counterEvent, err error) {
				require.ErrorIs(t, err, aggregate.ErrEventDecoding)
			},
		},
		{
			name:   "registered tag",
			record: eventstore.Record{ID: uuid.New(), Type: "counter-reset", Payload: []byte(`{"counterId":"00000000-0000-0000-0000-000000000007"}`)},
			expect: func(t *testing.T, evt counterEvent, err error) {
				require.NoError(t, err)
				assert.Equal(t, counterReset{CounterID: uuid.MustParse("00000000-0000-0000-0000-000000000007")}, evt)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			evt, err := newCounterCodec().Decode(eventstore.RecordedEvent{Record: tt.record})
			tt.expect(t, evt, err)
		})
	}
}

func TestStreamName(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.Equal(t, "Game_6ba7b810-9dad-11d1-80b4-00c04fd430c8", aggregate.StreamName("Game", id))
}
