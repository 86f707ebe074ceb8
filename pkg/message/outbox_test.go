package message_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcodiri/micros-chess/pkg/log"
	"github.com/marcodiri/micros-chess/pkg/message"
	"github.com/marcodiri/micros-chess/pkg/message/mock"
)

func newTestMessage(eventType string) message.Message {
	return message.Message{
		ID:      uuid.New(),
		Topic:   message.NewEventTypeTopic(eventType),
		Key:     "Game_" + uuid.NewString(),
		Payload: []byte(`{}`),
	}
}

func runOutbox(t *testing.T, outbox message.OutboxProducer, done <-chan struct{}) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- outbox.Worker(ctx) }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("outbox did not process messages in time")
	}

	cancel()
	require.ErrorIs(t, <-result, context.Canceled)
}

func TestOutboxProducer_ProducesAndDeletes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mock.NewStorage(ctrl)
	producer := mock.NewProducer(ctrl)

	first := newTestMessage("game-created")
	second := newTestMessage("game-move-played")
	released := 0
	release := func() error {
		released++
		return nil
	}
	done := make(chan struct{})

	storage.EXPECT().Lock(gomock.Any()).DoAndReturn(func(ctx context.Context) (context.Context, func() error, error) {
		return ctx, release, nil
	})
	storage.EXPECT().
		Find(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec *message.StorageSpecification) ([]message.Message, error) {
			assert.Equal(t, 2, spec.Limit)
			assert.False(t, spec.ScheduledAtBefore.IsZero())
			return []message.Message{first, second}, nil
		})
	storage.EXPECT().Lock(gomock.Any()).DoAndReturn(func(ctx context.Context) (context.Context, func() error, error) {
		return ctx, release, nil
	})
	storage.EXPECT().Find(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *message.StorageSpecification) ([]message.Message, error) {
			close(done)
			return nil, nil
		},
	)
	gomock.InOrder(
		producer.EXPECT().Produce(gomock.Any(), &first).Return(nil),
		storage.EXPECT().Delete(gomock.Any(), first.ID).Return(nil),
		producer.EXPECT().Produce(gomock.Any(), &second).Return(nil),
		storage.EXPECT().Delete(gomock.Any(), second.ID).Return(nil),
	)

	outbox := message.NewOutboxProducer(storage, producer,
		message.WithOutboxBatchSize(2),
		message.WithOutboxLogging(log.NewStub(), log.LevelInfo, log.LevelError),
	)
	runOutbox(t, outbox, done)

	assert.Equal(t, 2, released)
}

func TestOutboxProducer_RetriesFailedProduce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mock.NewStorage(ctrl)
	producer := mock.NewProducer(ctrl)

	msg := newTestMessage("game-proposal-accepted")
	done := make(chan struct{})

	storage.EXPECT().Lock(gomock.Any()).DoAndReturn(func(ctx context.Context) (context.Context, func() error, error) {
		return ctx, func() error { return nil }, nil
	}).Times(2)
	storage.EXPECT().Find(gomock.Any(), gomock.Any()).Return([]message.Message{msg}, nil).Times(2)
	gomock.InOrder(
		producer.EXPECT().Produce(gomock.Any(), &msg).Return(errors.New("broker unavailable")),
		producer.EXPECT().Produce(gomock.Any(), &msg).Return(nil),
		storage.EXPECT().Delete(gomock.Any(), msg.ID).DoAndReturn(func(context.Context, ...uuid.UUID) error {
			close(done)
			return nil
		}),
	)

	outbox := message.NewOutboxProducer(storage, producer,
		message.WithOutboxRetry(backoff.NewConstantBackOff(time.Millisecond)),
	)
	runOutbox(t, outbox, done)
}

func TestOutboxProducer_LockFailureIsRetried(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mock.NewStorage(ctrl)
	producer := mock.NewProducer(ctrl)

	done := make(chan struct{})
	gomock.InOrder(
		storage.EXPECT().Lock(gomock.Any()).Return(nil, nil, errors.New("connection refused")),
		storage.EXPECT().Lock(gomock.Any()).DoAndReturn(func(ctx context.Context) (context.Context, func() error, error) {
			return ctx, func() error { return nil }, nil
		}),
		storage.EXPECT().Find(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *message.StorageSpecification) ([]message.Message, error) {
				close(done)
				return nil, nil
			},
		),
	)

	outbox := message.NewOutboxProducer(storage, producer,
		message.WithOutboxRetry(backoff.NewConstantBackOff(time.Millisecond)),
	)
	runOutbox(t, outbox, done)
}
