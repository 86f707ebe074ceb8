package game

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/marcodiri/micros-chess/internal/game/app/service"
	"github.com/marcodiri/micros-chess/internal/game/domain"
	"github.com/marcodiri/micros-chess/internal/game/infra/eventsourcing"
	"github.com/marcodiri/micros-chess/internal/game/infra/http"
	"github.com/marcodiri/micros-chess/pkg/aggregate"
	"github.com/marcodiri/micros-chess/pkg/eventstore"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
	pkglazy "github.com/marcodiri/micros-chess/pkg/lazy"
	"github.com/marcodiri/micros-chess/pkg/log"
)

type DependencyContainer struct {
	GameRepo     pkglazy.Loader[domain.GameRepository]
	GameService  pkglazy.Loader[*service.GameService]
	HTTPHandlers pkglazy.Loader[[]pkghttp.Handler]
}

func NewDependencyContainer(
	eventStore pkglazy.Loader[eventstore.Store],
	tracer pkglazy.Loader[trace.Tracer],
	logger pkglazy.Loader[log.Logger],
	gameOpts ...domain.GameOption,
) *DependencyContainer {
	gameRepo := gameRepoProvider(eventStore, tracer, logger, gameOpts...)
	gameService := pkglazy.New(func() (*service.GameService, error) {
		return service.NewGameService(gameRepo.MustLoad()), nil
	})

	return &DependencyContainer{
		GameRepo:    gameRepo,
		GameService: gameService,
		HTTPHandlers: pkglazy.New(func() ([]pkghttp.Handler, error) {
			srv := gameService.MustLoad()
			return []pkghttp.Handler{
				http.NewPingHandler(),
				http.NewCreateGameHandler(srv),
				http.NewPlayMoveHandler(srv),
				http.NewEndGameHandler(srv),
				http.NewGameEventsHandler(srv),
			}, nil
		}),
	}
}

func (c *DependencyContainer) HTTPServerOptions() []pkghttp.ServerOption {
	return []pkghttp.ServerOption{http.WithErrorMapping()}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.HTTPHandlers.MustLoad()...)
}

func gameRepoProvider(
	eventStore pkglazy.Loader[eventstore.Store],
	tracer pkglazy.Loader[trace.Tracer],
	logger pkglazy.Loader[log.Logger],
	gameOpts ...domain.GameOption,
) pkglazy.Loader[domain.GameRepository] {
	return pkglazy.New(func() (domain.GameRepository, error) {
		return eventsourcing.NewGameRepository(
			eventStore.MustLoad(),
			domain.NewGameFactory(gameOpts...),
			aggregate.WithLogger(logger.MustLoad()),
			aggregate.WithTracer(tracer.MustLoad()),
		), nil
	})
}
