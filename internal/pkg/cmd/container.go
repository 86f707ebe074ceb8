package cmd

import (
	"context"
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/marcodiri/micros-chess/internal/pkg/config"
	commonhttp "github.com/marcodiri/micros-chess/internal/pkg/http"
	"github.com/marcodiri/micros-chess/pkg/eventstore"
	"github.com/marcodiri/micros-chess/pkg/http"
	"github.com/marcodiri/micros-chess/pkg/lazy"
	"github.com/marcodiri/micros-chess/pkg/log"
	"github.com/marcodiri/micros-chess/pkg/message"
	"github.com/marcodiri/micros-chess/pkg/nats"
	"github.com/marcodiri/micros-chess/pkg/pulsar"
	"github.com/marcodiri/micros-chess/pkg/sql"
)

type InfrastructureContainer struct {
	Config            *config.Config
	HTTPClientFactory lazy.Loader[*commonhttp.ClientFactory]
	EventStore        lazy.Loader[eventstore.Store]
	MessageBroker     lazy.Loader[message.Broker]
	MessageOutbox     lazy.Loader[message.OutboxProducer]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Tracer            lazy.Loader[trace.Tracer]
	Logger            lazy.Loader[log.Logger]

	tracerProviderImpl lazy.Loader[*sdktrace.TracerProvider]
}

func NewInfrastructureContainer(ctx context.Context, cfg *config.Config, serviceName string) *InfrastructureContainer {
	logger := loggerProvider(cfg, serviceName)
	tracerProviderImpl := tracerProviderImplProvider(ctx, cfg, serviceName)

	db := sqlDatabaseProvider(cfg, logger)
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)
	outboxStorage := sqlMessageOutboxStorageProvider(db, dbMigrations)
	msgBroker := messageBrokerProvider(cfg, logger)

	return &InfrastructureContainer{
		Config:             cfg,
		HTTPClientFactory:  httpClientFactoryProvider(cfg, serviceName, logger),
		EventStore:         sqlEventStoreProvider(db, dbMigrations, outboxStorage),
		MessageBroker:      msgBroker,
		MessageOutbox:      messageOutboxProducerProvider(outboxStorage, msgBroker, logger),
		DBMigrations:       dbMigrations,
		DB:                 db,
		Tracer:             tracerProvider(tracerProviderImpl, serviceName),
		Logger:             logger,
		tracerProviderImpl: tracerProviderImpl,
	}
}

func (i *InfrastructureContainer) MustInitHTTPServer(opts ...http.ServerOption) http.Server {
	opts = append([]http.ServerOption{
		http.WithHealthCheck(),
		http.WithLogging(i.Logger.MustLoad(), log.LevelInfo, log.LevelError),
	}, opts...)

	return http.NewServer(i.Config.HTTP.Address, opts...)
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	i.MessageBroker.IfLoaded(func(broker message.Broker) { broker.Close() })
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
	i.tracerProviderImpl.IfLoaded(func(provider *sdktrace.TracerProvider) {
		if provider == nil {
			return
		}

		err := provider.Shutdown(ctx)
		if err != nil {
			i.Logger.MustLoad().WithError(err).Warn(ctx, "failed to shutdown tracer provider")
		}
	})
}

func loggerProvider(cfg *config.Config, serviceName string) lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		return log.New(cfg.LogLevel()).WithField("service", serviceName), nil
	})
}

func tracerProviderImplProvider(
	ctx context.Context,
	cfg *config.Config,
	serviceName string,
) lazy.Loader[*sdktrace.TracerProvider] {
	return lazy.New(func() (*sdktrace.TracerProvider, error) {
		if cfg.Tracing.Endpoint == "" {
			return nil, nil
		}

		return newTracerProvider(ctx, cfg.Tracing.Endpoint, serviceName)
	})
}

func tracerProvider(
	impl lazy.Loader[*sdktrace.TracerProvider],
	serviceName string,
) lazy.Loader[trace.Tracer] {
	return lazy.New(func() (trace.Tracer, error) {
		provider, err := impl.Load()
		if err != nil {
			return nil, err
		}
		if provider == nil {
			return noop.NewTracerProvider().Tracer(serviceName), nil
		}

		return provider.Tracer(serviceName), nil
	})
}

func sqlDatabaseProvider(
	cfg *config.Config,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		db, err := sql.NewDatabase(cfg.SQLConfig(), logger.MustLoad())
		if err != nil {
			return nil, fmt.Errorf("open sql connection: %w", err)
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func sqlMessageOutboxStorageProvider(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[SQLMigrations],
) lazy.Loader[message.Storage] {
	return lazy.New(func() (message.Storage, error) {
		dbMigrations.MustLoad().MustRegister(sql.MessageOutboxMigrations())
		return sql.NewMessageOutboxStorage(db.MustLoad()), nil
	})
}

func sqlEventStoreProvider(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[SQLMigrations],
	outboxStorage lazy.Loader[message.Storage],
) lazy.Loader[eventstore.Store] {
	return lazy.New(func() (eventstore.Store, error) {
		dbMigrations.MustLoad().MustRegister(sql.EventStoreMigrations())
		return sql.NewEventStore(
			db.MustLoad(),
			sql.WithEventOutbox(outboxStorage.MustLoad()),
		), nil
	})
}

func messageBrokerProvider(
	cfg *config.Config,
	logger lazy.Loader[log.Logger],
) lazy.Loader[message.Broker] {
	return lazy.New(func() (message.Broker, error) {
		switch cfg.Broker.Type {
		case config.BrokerTypeNATS:
			broker, err := nats.NewMessageBroker(&nats.Config{
				Address:           cfg.Broker.Address,
				ConnectionTimeout: cfg.Broker.ConnectionTimeout,
			}, logger.MustLoad())
			if err != nil {
				return nil, fmt.Errorf("open nats connection: %w", err)
			}
			return broker, nil
		default:
			broker, err := pulsar.NewMessageBroker(&pulsar.Config{
				Address:           cfg.Broker.Address,
				ConnectionTimeout: cfg.Broker.ConnectionTimeout,
			}, logger.MustLoad())
			if err != nil {
				return nil, fmt.Errorf("open pulsar connection: %w", err)
			}
			return broker, nil
		}
	})
}

func messageOutboxProducerProvider(
	outboxStorage lazy.Loader[message.Storage],
	msgBroker lazy.Loader[message.Broker],
	logger lazy.Loader[log.Logger],
) lazy.Loader[message.OutboxProducer] {
	return lazy.New(func() (message.OutboxProducer, error) {
		return message.NewOutboxProducer(
			outboxStorage.MustLoad(),
			msgBroker.MustLoad(),
			message.WithOutboxLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}

func httpClientFactoryProvider(
	cfg *config.Config,
	serviceName string,
	logger lazy.Loader[log.Logger],
) lazy.Loader[*commonhttp.ClientFactory] {
	return lazy.New(func() (*commonhttp.ClientFactory, error) {
		return commonhttp.NewClientFactory(
			map[http.Destination]string{
				commonhttp.DestinationGameService: cfg.GameService.URL,
			},
			commonhttp.WithCallerService(serviceName),
			http.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
