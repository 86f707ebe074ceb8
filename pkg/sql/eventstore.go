package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/marcodiri/micros-chess/pkg/eventstore"
	"github.com/marcodiri/micros-chess/pkg/message"
)

const (
	eventStoreLockPrefix = "event_store_"

	pqUniqueViolation pq.ErrorCode = "23505"
)

type (
	EventStoreOption func(*EventStore)

	// EventStore keeps every stream in a single table, versions start from 1.
	EventStore struct {
		db          TxClient
		client      Client
		transaction Transaction
		outbox      message.Storage
		onCommit    []func()
		now         func() time.Time
	}
)

func NewEventStore(db TxClient, opts ...EventStoreOption) *EventStore {
	s := &EventStore{
		db:          db,
		client:      NewTransactionalClient(db),
		transaction: NewTransaction(db),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithEventOutbox stores one message per appended event to the event type topic, keyed by stream.
func WithEventOutbox(outbox message.Storage) EventStoreOption {
	return func(s *EventStore) {
		s.outbox = outbox
	}
}

func WithOnCommit(fn func()) EventStoreOption {
	return func(s *EventStore) {
		s.onCommit = append(s.onCommit, fn)
	}
}

func (s *EventStore) AppendToStream(
	ctx context.Context,
	stream string,
	expected eventstore.Version,
	records []eventstore.Record,
) (eventstore.Version, error) {
	err := eventstore.CheckAppend(stream, eventstore.VersionAny, 0, records)
	if err != nil {
		return 0, fmt.Errorf("append to %s: %w", stream, err)
	}

	var current, next eventstore.Version
	err = s.transaction.Execute(ctx, func(ctx context.Context) error {
		err := s.client.GetContext(ctx, &current, "select count(*) from event_store where stream = $1", stream)
		if err != nil {
			return fmt.Errorf("get stream version: %w", err)
		}

		err = eventstore.CheckAppend(stream, expected, current, records)
		if err != nil {
			return err
		}

		next = current
		recordedAt := s.now().UTC()
		qb := sq.Insert("event_store").Columns("id", "stream", "version", "type", "payload", "recorded_at")
		msgs := make([]message.Message, 0, len(records))
		for _, record := range records {
			next++
			qb = qb.Values(record.ID, stream, int64(next), record.Type, string(record.Payload), recordedAt)
			msgs = append(msgs, message.Message{
				ID:      record.ID,
				Topic:   message.NewEventTypeTopic(record.Type),
				Key:     stream,
				Payload: record.Payload,
			})
		}

		query, args, err := qb.ToSql()
		if err != nil {
			return fmt.Errorf("build sql: %w", err)
		}

		_, err = s.client.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("insert events: %w", translatePQError(err))
		}

		if s.outbox == nil {
			return nil
		}

		err = s.outbox.Store(ctx, recordedAt, msgs...)
		if err != nil {
			return fmt.Errorf("store outbox messages: %w", err)
		}

		return nil
	}, eventStoreLockPrefix+stream)
	if err != nil {
		return current, fmt.Errorf("append to %s at version %d: %w", stream, expected, err)
	}

	for _, fn := range s.onCommit {
		fn()
	}

	return next, nil
}

func (s *EventStore) ReadStreamForward(ctx context.Context, stream string) ([]eventstore.RecordedEvent, error) {
	query, args, err := sq.
		Select("id", "stream", "version", "type", "payload", "recorded_at").
		From("event_store").
		Where(sq.Eq{"stream": stream}).
		OrderBy("version").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var sqlxResult []sqlxEvent
	err = s.client.SelectContext(ctx, &sqlxResult, query, args...)
	if err != nil {
		return nil, fmt.Errorf("read stream %s: %w", stream, err)
	}

	result := make([]eventstore.RecordedEvent, 0, len(sqlxResult))
	for _, evt := range sqlxResult {
		result = append(result, eventstore.RecordedEvent{
			Record: eventstore.Record{
				ID:      evt.ID,
				Type:    evt.Type,
				Payload: evt.Payload,
			},
			Stream:     evt.Stream,
			Version:    eventstore.Version(evt.Version),
			RecordedAt: evt.RecordedAt,
		})
	}

	return result, nil
}

func translatePQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return fmt.Errorf("%w: %w", eventstore.ErrConcurrentModification, err)
	}

	return err
}

func EventStoreMigrations() []Migration {
	return []Migration{
		{
			ID: "0000-00-00-002-create-event-store-table",
			SQL: `
				create table if not exists event_store (
					id          uuid        not null unique,
					stream      text        not null,
					version     bigint      not null,
					type        text        not null,
					payload     jsonb       not null,
					recorded_at timestamptz not null,
					primary key (stream, version)
				);

				create index if not exists event_store_type on event_store(type)
			`,
		},
	}
}

type sqlxEvent struct {
	ID         uuid.UUID `db:"id"`
	Stream     string    `db:"stream"`
	Version    int64     `db:"version"`
	Type       string    `db:"type"`
	Payload    []byte    `db:"payload"`
	RecordedAt time.Time `db:"recorded_at"`
}
