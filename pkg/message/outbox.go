package message

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/marcodiri/micros-chess/pkg/log"
)

const defaultOutboxBatchSize = 100

type (
	// OutboxProducer moves stored messages to the broker, deleting each one once it was produced.
	OutboxProducer interface {
		Worker(context.Context) error
		Process()
	}

	OutboxOption func(*OutboxProducerImpl)

	OutboxProducerImpl struct {
		BatchSize        int
		Retry            backoff.BackOff
		OnInternalError  []func(context.Context, error)
		OnFoundMessages  []func(context.Context, []Message, error)
		OnSentMessage    []func(context.Context, *Message, error)
		OnDeletedMessage []func(context.Context, *Message, error)

		storage     Storage
		producer    Producer
		now         func() time.Time
		processChan chan struct{}
	}
)

func NewOutboxProducer(
	storage Storage,
	producer Producer,
	opts ...OutboxOption,
) *OutboxProducerImpl {
	defaultRetry := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(time.Second),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(time.Minute),
		backoff.WithMaxElapsedTime(0),
	)

	o := &OutboxProducerImpl{
		BatchSize: defaultOutboxBatchSize,
		Retry:     defaultRetry,

		storage:     storage,
		producer:    producer,
		now:         time.Now,
		processChan: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *OutboxProducerImpl) Worker(ctx context.Context) error {
	o.Process()

	for {
		select {
		case <-o.processChan:
			o.process(ctx)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Process schedules a drain, calls made while one is pending are merged.
func (o *OutboxProducerImpl) Process() {
	select {
	case o.processChan <- struct{}{}:
	default:
	}
}

func (o *OutboxProducerImpl) process(ctx context.Context) {
	impl := func() error {
		for {
			allProcessed, err := o.processBatch(ctx)
			if err != nil {
				return err
			}
			if allProcessed {
				return nil
			}
		}
	}

	o.Retry.Reset()
	_ = backoff.Retry(impl, backoff.WithContext(o.Retry, ctx))
}

func (o *OutboxProducerImpl) processBatch(ctx context.Context) (allProcessed bool, err error) {
	lockCtx, releaseLock, err := o.storage.Lock(ctx)
	if err != nil {
		err = fmt.Errorf("get storage lock: %w", err)
		o.internalError(ctx, err)
		return false, err
	}
	defer func() {
		releaseErr := releaseLock()
		if releaseErr != nil {
			o.internalError(ctx, fmt.Errorf("release storage lock: %w", releaseErr))
		}
	}()

	msgs, err := o.storage.Find(lockCtx, &StorageSpecification{
		ScheduledAtBefore: o.now(),
		Limit:             o.BatchSize,
	})
	for _, fn := range o.OnFoundMessages {
		fn(lockCtx, msgs, err)
	}
	if err != nil {
		return false, fmt.Errorf("get messages to send: %w", err)
	}
	if len(msgs) == 0 {
		return true, nil
	}

	for i := range msgs {
		msg := &msgs[i]
		err = o.producer.Produce(lockCtx, msg)
		for _, fn := range o.OnSentMessage {
			fn(lockCtx, msg, err)
		}
		if err != nil {
			return false, fmt.Errorf("send message: %w", err)
		}

		err = o.storage.Delete(lockCtx, msg.ID)
		for _, fn := range o.OnDeletedMessage {
			fn(lockCtx, msg, err)
		}
		if err != nil {
			return false, fmt.Errorf("delete sent message: %w", err)
		}
	}

	return len(msgs) < o.BatchSize, nil
}

func (o *OutboxProducerImpl) internalError(ctx context.Context, err error) {
	for _, fn := range o.OnInternalError {
		fn(ctx, err)
	}
}

func WithOutboxBatchSize(size int) OutboxOption {
	return func(o *OutboxProducerImpl) {
		if size > 0 {
			o.BatchSize = size
		}
	}
}

func WithOutboxRetry(retry backoff.BackOff) OutboxOption {
	return func(o *OutboxProducerImpl) {
		o.Retry = retry
	}
}

func WithOutboxLogging(
	logger log.Logger,
	infoLevel log.Level,
	errorLevel log.Level,
) OutboxOption {
	return func(o *OutboxProducerImpl) {
		o.OnInternalError = append(o.OnInternalError, func(ctx context.Context, err error) {
			logger.WithError(err).Log(ctx, errorLevel, "message outbox internal error")
		})

		o.OnFoundMessages = append(o.OnFoundMessages, func(ctx context.Context, _ []Message, err error) {
			if err != nil {
				logger.WithError(err).Log(ctx, errorLevel, "message outbox internal error")
			}
		})

		o.OnSentMessage = append(o.OnSentMessage, func(ctx context.Context, msg *Message, err error) {
			logger := logger.With(log.Fields{
				"messageID": msg.ID,
				"topic":     msg.Topic,
			})
			if err != nil {
				logger.WithError(err).Log(ctx, errorLevel, "outbox message sending failed")
			} else {
				logger.Log(ctx, infoLevel, "outbox message sent")
			}
		})

		o.OnDeletedMessage = append(o.OnDeletedMessage, func(ctx context.Context, msg *Message, err error) {
			if err != nil {
				logger.
					WithField("messageID", msg.ID).
					WithError(fmt.Errorf("delete message from storage: %w", err)).
					Log(ctx, errorLevel, "message outbox internal error")
			}
		})
	}
}
