package sql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/pkg/message"
)

const messageOutboxLockName = "message_outbox"

type MessageOutboxStorage struct {
	db     TxClient
	client Client
}

// NewMessageOutboxStorage stores messages within the transaction found in ctx, if any.
func NewMessageOutboxStorage(db TxClient) *MessageOutboxStorage {
	return &MessageOutboxStorage{
		db:     db,
		client: NewTransactionalClient(db),
	}
}

// Lock opens a transaction holding the outbox lock, release commits the deletions made under it.
func (s *MessageOutboxStorage) Lock(ctx context.Context) (context.Context, func() error, error) {
	lockCtx, finish, err := beginDetached(ctx, s.db, messageOutboxLockName)
	if err != nil {
		return nil, nil, err
	}

	return lockCtx, func() error {
		return finish(true)
	}, nil
}

func (s *MessageOutboxStorage) Find(ctx context.Context, spec *message.StorageSpecification) ([]message.Message, error) {
	qb := sq.
		Select("id", "topic", "key", "payload").
		From("message_outbox").
		Where(sq.LtOrEq{"scheduled_at": spec.ScheduledAtBefore}).
		OrderBy("scheduled_at", "position")
	if len(spec.Topics) > 0 {
		topics := make([]string, 0, len(spec.Topics))
		for _, topic := range spec.Topics {
			topics = append(topics, string(topic))
		}
		qb = qb.Where(sq.Eq{"topic": topics})
	}
	if spec.Limit > 0 {
		qb = qb.Limit(uint64(spec.Limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var sqlxResult []sqlxMessage
	err = s.client.SelectContext(ctx, &sqlxResult, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}

	result := make([]message.Message, 0, len(sqlxResult))
	for _, sqlxMsg := range sqlxResult {
		result = append(result, message.Message{
			ID:      sqlxMsg.ID,
			Topic:   message.Topic(sqlxMsg.Topic),
			Key:     sqlxMsg.Key,
			Payload: sqlxMsg.Payload,
		})
	}

	return result, nil
}

func (s *MessageOutboxStorage) Store(ctx context.Context, scheduledAt time.Time, msgs ...message.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	qb := sq.Insert("message_outbox").Columns("id", "topic", "key", "payload", "scheduled_at")
	for _, msg := range msgs {
		qb = qb.Values(msg.ID, string(msg.Topic), msg.Key, msg.Payload, scheduledAt)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = s.client.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert messages: %w", err)
	}

	return nil
}

func (s *MessageOutboxStorage) Delete(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sq.
		Delete("message_outbox").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = s.client.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}

	return nil
}

func MessageOutboxMigrations() []Migration {
	return []Migration{
		{
			ID: "0000-00-00-001-create-message-outbox-table",
			SQL: `
				create table if not exists message_outbox (
					id           uuid primary key,
					position     bigserial   not null,
					topic        text        not null,
					key          text        not null,
					payload      bytea       not null,
					scheduled_at timestamptz not null
				);

				create index if not exists message_outbox_scheduled_at on message_outbox(scheduled_at, position)
			`,
		},
	}
}

type sqlxMessage struct {
	ID      uuid.UUID `db:"id"`
	Topic   string    `db:"topic"`
	Key     string    `db:"key"`
	Payload []byte    `db:"payload"`
}
