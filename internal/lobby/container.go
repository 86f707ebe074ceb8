package lobby

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/marcodiri/micros-chess/internal/lobby/app/service"
	"github.com/marcodiri/micros-chess/internal/lobby/domain"
	"github.com/marcodiri/micros-chess/internal/lobby/infra/eventsourcing"
	"github.com/marcodiri/micros-chess/internal/lobby/infra/http"
	"github.com/marcodiri/micros-chess/pkg/aggregate"
	"github.com/marcodiri/micros-chess/pkg/eventstore"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
	pkglazy "github.com/marcodiri/micros-chess/pkg/lazy"
	"github.com/marcodiri/micros-chess/pkg/log"
)

type DependencyContainer struct {
	GameProposalRepo pkglazy.Loader[domain.GameProposalRepository]
	LobbyService     pkglazy.Loader[*service.LobbyService]
	HTTPHandlers     pkglazy.Loader[[]pkghttp.Handler]
}

func NewDependencyContainer(
	eventStore pkglazy.Loader[eventstore.Store],
	tracer pkglazy.Loader[trace.Tracer],
	logger pkglazy.Loader[log.Logger],
) *DependencyContainer {
	proposalRepo := gameProposalRepoProvider(eventStore, tracer, logger)
	lobbyService := pkglazy.New(func() (*service.LobbyService, error) {
		return service.NewLobbyService(proposalRepo.MustLoad()), nil
	})

	return &DependencyContainer{
		GameProposalRepo: proposalRepo,
		LobbyService:     lobbyService,
		HTTPHandlers: pkglazy.New(func() ([]pkghttp.Handler, error) {
			srv := lobbyService.MustLoad()
			return []pkghttp.Handler{
				http.NewPingHandler(),
				http.NewCreateGameProposalHandler(srv),
				http.NewCancelGameProposalHandler(srv),
				http.NewAcceptGameProposalHandler(srv),
				http.NewGameProposalEventsHandler(srv),
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

func gameProposalRepoProvider(
	eventStore pkglazy.Loader[eventstore.Store],
	tracer pkglazy.Loader[trace.Tracer],
	logger pkglazy.Loader[log.Logger],
) pkglazy.Loader[domain.GameProposalRepository] {
	return pkglazy.New(func() (domain.GameProposalRepository, error) {
		return eventsourcing.NewGameProposalRepository(
			eventStore.MustLoad(),
			domain.NewGameProposalFactory(),
			aggregate.WithLogger(logger.MustLoad()),
			aggregate.WithTracer(tracer.MustLoad()),
		), nil
	})
}
