package aggregate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/marcodiri/micros-chess/pkg/eventstore"
	"github.com/marcodiri/micros-chess/pkg/log"
)

const (
	logFieldKind      = "aggregateKind"
	logFieldStream    = "stream"
	logFieldEvents    = "eventCount"
	logFieldVersion   = "streamVersion"
	logFieldAggregate = "aggregateID"
)

type (
	RepositoryOption func(*repositoryConfig)

	repositoryConfig struct {
		logger log.Logger
		tracer trace.Tracer
	}

	// Repository persists one aggregate kind as streams of events named "{kind}_{id}".
	Repository[A Root[C, E], C any, E Event] struct {
		kind    string
		factory Factory[A]
		codec   *Codec[E]
		store   eventstore.Store
		logger  log.Logger
		tracer  trace.Tracer
	}
)

func WithLogger(logger log.Logger) RepositoryOption {
	return func(c *repositoryConfig) {
		c.logger = logger
	}
}

func WithTracer(tracer trace.Tracer) RepositoryOption {
	return func(c *repositoryConfig) {
		c.tracer = tracer
	}
}

func NewRepository[A Root[C, E], C any, E Event](
	kind string,
	factory Factory[A],
	codec *Codec[E],
	store eventstore.Store,
	opts ...RepositoryOption,
) *Repository[A, C, E] {
	cfg := repositoryConfig{
		logger: log.NewStub(),
		tracer: noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Repository[A, C, E]{
		kind:    kind,
		factory: factory,
		codec:   codec,
		store:   store,
		logger:  cfg.logger.WithField(logFieldKind, kind),
		tracer:  cfg.tracer,
	}
}

// Save handles a command that creates a new aggregate and writes its first events.
func (r *Repository[A, C, E]) Save(ctx context.Context, cmd C) (result A, err error) {
	ctx, span := r.startSpan(ctx, "Save")
	defer func() { endSpan(span, err) }()

	agg := r.factory()
	records, err := r.handle(agg, cmd)
	if err != nil {
		return result, err
	}

	id := agg.ID()
	if id == uuid.Nil {
		return result, fmt.Errorf("save %s: %w", r.kind, ErrMissingAggregateID)
	}

	err = r.append(ctx, id, eventstore.VersionNoStream, records)
	if err != nil {
		return result, err
	}

	r.logger.With(log.Fields{
		logFieldAggregate: id,
		logFieldEvents:    len(records),
	}).Info(ctx, "saved events")
	return agg, nil
}

// Update restores the aggregate from its stream and appends the events the command produces.
// The append fails with eventstore.ErrConcurrentModification when the stream grew after the restore.
func (r *Repository[A, C, E]) Update(ctx context.Context, id uuid.UUID, cmd C) (result A, err error) {
	ctx, span := r.startSpan(ctx, "Update")
	span.SetAttributes(attribute.String(logFieldAggregate, id.String()))
	defer func() { endSpan(span, err) }()

	agg, version, err := r.restore(ctx, id)
	if err != nil {
		return result, err
	}

	records, err := r.handle(agg, cmd)
	if err != nil {
		return result, err
	}

	switch actualID := agg.ID(); actualID {
	case uuid.Nil:
		return result, fmt.Errorf("update %s: %w", r.kind, ErrMissingAggregateID)
	case id:
	default:
		return result, fmt.Errorf("update %s: %w: expected %s, got %s", r.kind, ErrAggregateIDMismatch, id, actualID)
	}

	err = r.append(ctx, id, version, records)
	if err != nil {
		return result, err
	}

	r.logger.With(log.Fields{
		logFieldAggregate: id,
		logFieldEvents:    len(records),
		logFieldVersion:   version,
	}).Info(ctx, "updated aggregate")
	return agg, nil
}

// Load replays the stream of an aggregate without handling any command.
func (r *Repository[A, C, E]) Load(ctx context.Context, id uuid.UUID) (result A, err error) {
	ctx, span := r.startSpan(ctx, "Load")
	span.SetAttributes(attribute.String(logFieldAggregate, id.String()))
	defer func() { endSpan(span, err) }()

	agg, _, err := r.restore(ctx, id)
	if err != nil {
		return result, err
	}

	return agg, nil
}

func (r *Repository[A, C, E]) ReadEventsForAggregate(ctx context.Context, id uuid.UUID) (result []E, err error) {
	ctx, span := r.startSpan(ctx, "ReadEvents")
	span.SetAttributes(attribute.String(logFieldAggregate, id.String()))
	defer func() { endSpan(span, err) }()

	return r.readEvents(ctx, id)
}

func (r *Repository[A, C, E]) readEvents(ctx context.Context, id uuid.UUID) ([]E, error) {
	stream := StreamName(r.kind, id)
	records, err := r.store.ReadStreamForward(ctx, stream)
	if err != nil {
		return nil, fmt.Errorf("read stream %s: %w", stream, err)
	}

	events := make([]E, 0, len(records))
	for _, record := range records {
		evt, err := r.codec.Decode(record)
		if err != nil {
			return nil, fmt.Errorf("read stream %s: %w", stream, err)
		}
		events = append(events, evt)
	}

	return events, nil
}

func (r *Repository[A, C, E]) restore(ctx context.Context, id uuid.UUID) (A, eventstore.Version, error) {
	events, err := r.readEvents(ctx, id)
	if err != nil {
		var empty A
		return empty, 0, err
	}

	agg := r.factory()
	for _, evt := range events {
		err = agg.Apply(evt)
		if err != nil {
			var empty A
			return empty, 0, fmt.Errorf("restore %s: %w", StreamName(r.kind, id), err)
		}
	}

	version := eventstore.Version(len(events))
	r.logger.With(log.Fields{
		logFieldAggregate: id,
		logFieldVersion:   version,
	}).Debug(ctx, "restored aggregate")
	return agg, version, nil
}

// handle runs the command and applies each produced event in order, encoding it for the log.
func (r *Repository[A, C, E]) handle(agg A, cmd C) ([]eventstore.Record, error) {
	events, err := agg.Process(cmd)
	if err != nil {
		return nil, fmt.Errorf("process %T: %w", cmd, err)
	}

	records := make([]eventstore.Record, 0, len(events))
	for _, evt := range events {
		err = agg.Apply(evt)
		if err != nil {
			return nil, fmt.Errorf("apply %s: %w", evt.Type(), err)
		}

		record, err := r.codec.Encode(evt)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *Repository[A, C, E]) append(
	ctx context.Context,
	id uuid.UUID,
	expected eventstore.Version,
	records []eventstore.Record,
) error {
	if len(records) == 0 {
		return nil
	}

	stream := StreamName(r.kind, id)
	_, err := r.store.AppendToStream(ctx, stream, expected, records)
	if err != nil {
		return fmt.Errorf("append to stream %s: %w", stream, err)
	}

	return nil
}

func (r *Repository[A, C, E]) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, fmt.Sprintf("%sRepository.%s", r.kind, operation))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
