package web

import (
	"fmt"

	commonhttp "github.com/marcodiri/micros-chess/internal/pkg/http"
	"github.com/marcodiri/micros-chess/internal/web/app/external"
	"github.com/marcodiri/micros-chess/internal/web/app/service"
	"github.com/marcodiri/micros-chess/internal/web/infra/gameservice"
	webmessage "github.com/marcodiri/micros-chess/internal/web/infra/message"
	pkglazy "github.com/marcodiri/micros-chess/pkg/lazy"
	"github.com/marcodiri/micros-chess/pkg/log"
	"github.com/marcodiri/micros-chess/pkg/message"
	"github.com/marcodiri/micros-chess/pkg/worker"
)

const SubscriberName message.SubscriberName = "web-worker"

type DependencyContainer struct {
	GameService        pkglazy.Loader[external.GameService]
	MatchmakingService pkglazy.Loader[*service.MatchmakingService]
	MessageListeners   pkglazy.Loader[[]worker.ErrorJob]
}

func NewDependencyContainer(
	httpClients pkglazy.Loader[*commonhttp.ClientFactory],
	broker pkglazy.Loader[message.Broker],
	logger pkglazy.Loader[log.Logger],
) *DependencyContainer {
	gameService := pkglazy.New(func() (external.GameService, error) {
		return gameservice.NewService(
			httpClients.MustLoad().MustInitClient(commonhttp.DestinationGameService),
		), nil
	})
	matchmakingService := pkglazy.New(func() (*service.MatchmakingService, error) {
		return service.NewMatchmakingService(gameService.MustLoad(), logger.MustLoad()), nil
	})

	return &DependencyContainer{
		GameService:        gameService,
		MatchmakingService: matchmakingService,
		MessageListeners: pkglazy.New(func() ([]worker.ErrorJob, error) {
			consumer, err := broker.MustLoad().Consumer(
				message.NewEventTypeTopic(external.EventTypeGameProposalAccepted),
				SubscriberName,
				message.ConsumptionTypeShared,
			)
			if err != nil {
				return nil, fmt.Errorf("subscribe to %s: %w", external.EventTypeGameProposalAccepted, err)
			}

			return []worker.ErrorJob{
				message.NewListener(
					consumer,
					webmessage.NewGameProposalAcceptedHandler(matchmakingService.MustLoad().HandleGameProposalAccepted),
					message.WithListenerLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
				),
			}, nil
		}),
	}
}
