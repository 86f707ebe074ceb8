package aggregate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcodiri/micros-chess/pkg/aggregate"
	"github.com/marcodiri/micros-chess/pkg/eventstore"
	"github.com/marcodiri/micros-chess/pkg/eventstore/mock"
	"github.com/marcodiri/micros-chess/pkg/log"
)

type counterRepository = aggregate.Repository[*counter, counterCommand, counterEvent]

func newCounterRepository(store eventstore.Store) *counterRepository {
	return aggregate.NewRepository[*counter, counterCommand, counterEvent](
		counterKind,
		newCounter,
		newCounterCodec(),
		store,
		aggregate.WithLogger(log.NewStub()),
	)
}

func openedCounter(t *testing.T, repo *counterRepository) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := repo.Save(context.Background(), openCounter{id: id})
	require.NoError(t, err)
	return id
}

func TestRepository_Save(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := eventstore.NewMemoryStore()
	repo := newCounterRepository(store)

	id := uuid.New()
	agg, err := repo.Save(ctx, openCounter{id: id})
	require.NoError(t, err)
	assert.Equal(t, id, agg.ID())
	assert.True(t, agg.open)

	events, err := repo.ReadEventsForAggregate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []counterEvent{counterOpened{CounterID: id}}, events)

	raw, err := store.ReadStreamForward(ctx, "Counter_"+id.String())
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.Equal(t, "counter-opened", raw[0].Type)
}

func TestRepository_SaveFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cmd      counterCommand
		expected error
	}{
		{name: "no identity after processing", cmd: openCounter{id: uuid.Nil}, expected: aggregate.ErrMissingAggregateID},
		{name: "no events at all", cmd: touchCounter{}, expected: aggregate.ErrMissingAggregateID},
		{name: "rejected command", cmd: incrementCounter{by: 1}, expected: aggregate.ErrInvalidStateTransition},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			store := mock.NewStore(ctrl)
			store.EXPECT().AppendToStream(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := newCounterRepository(store).Save(context.Background(), tt.cmd)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestRepository_SaveExpectsNoStream(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mock.NewStore(ctrl)
	id := uuid.New()

	store.EXPECT().
		AppendToStream(gomock.Any(), "Counter_"+id.String(), eventstore.VersionNoStream, gomock.Len(1)).
		Return(eventstore.Version(0), eventstore.ErrConcurrentModification)

	_, err := newCounterRepository(store).Save(context.Background(), openCounter{id: id})
	require.ErrorIs(t, err, eventstore.ErrConcurrentModification)
}

func TestRepository_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newCounterRepository(eventstore.NewMemoryStore())
	id := openedCounter(t, repo)

	agg, err := repo.Update(ctx, id, incrementCounter{by: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, agg.value)

	agg, err = repo.Update(ctx, id, incrementCounter{by: 5})
	require.NoError(t, err)
	assert.Equal(t, 7, agg.value)

	events, err := repo.ReadEventsForAggregate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []counterEvent{
		counterOpened{CounterID: id},
		counterIncremented{CounterID: id, By: 2},
		counterIncremented{CounterID: id, By: 5},
	}, events)

	loaded, err := repo.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, agg, loaded)
}

func TestRepository_UpdatePassesObservedVersion(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mock.NewStore(ctrl)
	codec := newCounterCodec()
	id := uuid.New()
	stream := "Counter_" + id.String()

	history := make([]eventstore.RecordedEvent, 0, 2)
	for _, evt := range []counterEvent{counterOpened{CounterID: id}, counterIncremented{CounterID: id, By: 1}} {
		record, err := codec.Encode(evt)
		require.NoError(t, err)
		history = append(history, eventstore.RecordedEvent{Record: record, Stream: stream})
	}

	gomock.InOrder(
		store.EXPECT().ReadStreamForward(gomock.Any(), stream).Return(history, nil),
		store.EXPECT().
			AppendToStream(gomock.Any(), stream, eventstore.Version(2), gomock.Len(1)).
			Return(eventstore.Version(3), nil),
	)

	agg, err := newCounterRepository(store).Update(context.Background(), id, incrementCounter{by: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, agg.value)
}

func TestRepository_UpdateConcurrentModification(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := eventstore.NewMemoryStore()
	repo := newCounterRepository(store)
	id := openedCounter(t, repo)

	racing := &racingStore{
		Store: store,
		beforeAppend: func() {
			_, err := repo.Update(ctx, id, incrementCounter{by: 10})
			require.NoError(t, err)
		},
	}

	_, err := newCounterRepository(racing).Update(ctx, id, incrementCounter{by: 1})
	require.ErrorIs(t, err, eventstore.ErrConcurrentModification)

	agg, err := repo.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 10, agg.value, "the losing write must not be appended")
}

func TestRepository_UpdateFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cmd      func(id uuid.UUID) counterCommand
		expected error
	}{
		{
			name:     "event not handled by apply",
			cmd:      func(uuid.UUID) counterCommand { return resetCounter{} },
			expected: aggregate.ErrUnknownEvent,
		},
		{
			name:     "command switches identity",
			cmd:      func(uuid.UUID) counterCommand { return reopenCounterWith{id: uuid.New()} },
			expected: aggregate.ErrAggregateIDMismatch,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			repo := newCounterRepository(eventstore.NewMemoryStore())
			id := openedCounter(t, repo)

			_, err := repo.Update(ctx, id, tt.cmd(id))
			require.ErrorIs(t, err, tt.expected)

			events, err := repo.ReadEventsForAggregate(ctx, id)
			require.NoError(t, err)
			assert.Len(t, events, 1, "nothing must be appended")
		})
	}
}

func TestRepository_UpdateWithoutEventsAppendsNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newCounterRepository(eventstore.NewMemoryStore())
	id := openedCounter(t, repo)

	agg, err := repo.Update(ctx, id, touchCounter{})
	require.NoError(t, err)
	assert.Equal(t, id, agg.ID())

	events, err := repo.ReadEventsForAggregate(ctx, id)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestRepository_UpdateMissingStream(t *testing.T) {
	t.Parallel()

	_, err := newCounterRepository(eventstore.NewMemoryStore()).
		Update(context.Background(), uuid.New(), incrementCounter{by: 1})
	require.ErrorIs(t, err, aggregate.ErrInvalidStateTransition)
}

func TestRepository_ReadEventsFailsOnCorruptedHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := eventstore.NewMemoryStore()
	repo := newCounterRepository(store)
	id := openedCounter(t, repo)

	_, err := store.AppendToStream(ctx, "Counter_"+id.String(), eventstore.VersionAny, []eventstore.Record{
		{ID: uuid.New(), Type: "counter-archived", Payload: []byte(`{}`)},
	})
	require.NoError(t, err)

	_, err = repo.ReadEventsForAggregate(ctx, id)
	require.ErrorIs(t, err, aggregate.ErrUnknownEventType)

	_, err = repo.Update(ctx, id, incrementCounter{by: 1})
	require.ErrorIs(t, err, aggregate.ErrUnknownEventType)
}

func TestRepository_PropagatesStoreErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mock.NewStore(ctrl)
	errStore := errors.New("store is down")
	store.EXPECT().ReadStreamForward(gomock.Any(), gomock.Any()).Return(nil, errStore)

	_, err := newCounterRepository(store).Update(context.Background(), uuid.New(), incrementCounter{by: 1})
	require.ErrorIs(t, err, errStore)
}

type racingStore struct {
	eventstore.Store
	beforeAppend func()
}

func (s *racingStore) AppendToStream(
	ctx context.Context,
	stream string,
	expected eventstore.Version,
	records []eventstore.Record,
) (eventstore.Version, error) {
	s.beforeAppend()
	return s.Store.AppendToStream(ctx, stream, expected, records)
}
