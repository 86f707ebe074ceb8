package message

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/marcodiri/micros-chess/pkg/log"
	"github.com/marcodiri/micros-chess/pkg/worker"
)

var ErrConsumerClosed = errors.New("consumer closed messages channel")

type (
	ListenerImpl struct {
		HandlerRetry    backoff.BackOff
		OnHandlerResult []func(context.Context, *Message, error)
		OnAckResult     []func(_ context.Context, _ *Message, handlerResult error, ackErr error)

		consumer Consumer
		handler  Handler
	}

	ListenerOption func(*ListenerImpl)

	PanicError struct {
		Message    string
		Stacktrace []byte
	}
)

func (e *PanicError) Error() string {
	return fmt.Sprintf("message handled with panic: %s", e.Message)
}

// NewListener handles consumer messages one at a time. A message is acked after the handler
// succeeded and nacked once the handler retry gave up, so the broker redelivers it.
// Permanent errors and panics are not retried and the message is acked to drop it.
func NewListener(consumer Consumer, handler Handler, opts ...ListenerOption) worker.ErrorJob {
	defaultHandlerRetry := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(100*time.Millisecond),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(10*time.Second),
		backoff.WithMaxElapsedTime(time.Minute),
	)

	l := &ListenerImpl{
		HandlerRetry: defaultHandlerRetry,

		consumer: consumer,
		handler:  handler,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l.Worker
}

func (l *ListenerImpl) Worker(ctx context.Context) error {
	err := l.listen(ctx)
	closeErr := l.consumer.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("message listener %s: %w", l.consumer.Name(), err)
	}

	return nil
}

func (l *ListenerImpl) listen(ctx context.Context) error {
	messages := l.consumer.Messages()
	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				return ErrConsumerClosed
			}
			l.processMessage(ctx, msg)
		case <-ctx.Done():
			return nil
		}
	}
}

func (l *ListenerImpl) processMessage(ctx context.Context, msg *ConsumerMessage) {
	msgCtx := msg.Context
	if msgCtx == nil {
		msgCtx = ctx
	}

	var permanent bool
	l.HandlerRetry.Reset()
	handlerErr := backoff.Retry(
		func() error {
			err := l.handleSafely(msgCtx, &msg.Message)
			var permanentErr *backoff.PermanentError
			permanent = errors.As(err, &permanentErr)
			return err
		},
		backoff.WithContext(l.HandlerRetry, ctx),
	)
	for _, fn := range l.OnHandlerResult {
		fn(msgCtx, &msg.Message, handlerErr)
	}

	var ackErr error
	if handlerErr == nil || permanent {
		ackErr = l.consumer.Ack(msg)
	} else {
		ackErr = l.consumer.Nack(msg)
	}
	for _, fn := range l.OnAckResult {
		fn(msgCtx, &msg.Message, handlerErr, ackErr)
	}
}

func (l *ListenerImpl) handleSafely(ctx context.Context, msg *Message) (err error) {
	defer func() {
		panicMsg := recover()
		if panicMsg == nil {
			return
		}

		err = backoff.Permanent(&PanicError{
			Message:    fmt.Sprintf("%v", panicMsg),
			Stacktrace: debug.Stack(),
		})
	}()

	return l.handler(ctx, msg)
}

func WithHandlerRetry(retry backoff.BackOff) ListenerOption {
	return func(l *ListenerImpl) {
		l.HandlerRetry = retry
	}
}

func WithListenerLogging(logger log.Logger, infoLevel, errorLevel log.Level) ListenerOption {
	return func(l *ListenerImpl) {
		logger := logger.WithField("consumer", l.consumer.Name())

		l.OnHandlerResult = append(l.OnHandlerResult, func(ctx context.Context, msg *Message, err error) {
			logger := logger.With(log.Fields{
				"messageID": msg.ID,
				"topic":     msg.Topic,
			})

			var panicErr *PanicError
			switch {
			case errors.As(err, &panicErr):
				logger.
					WithField("stacktrace", string(panicErr.Stacktrace)).
					WithError(err).
					Log(ctx, errorLevel, "message handled with panic")
			case err != nil:
				logger.WithError(err).Log(ctx, errorLevel, "message handled with error")
			default:
				logger.Log(ctx, infoLevel, "message handled")
			}
		})

		l.OnAckResult = append(l.OnAckResult, func(ctx context.Context, msg *Message, _ error, ackErr error) {
			if ackErr != nil {
				logger.
					WithField("messageID", msg.ID).
					WithError(ackErr).
					Log(ctx, errorLevel, "message acknowledgement failed")
			}
		})
	}
}
