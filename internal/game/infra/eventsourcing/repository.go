package eventsourcing

import (
	"github.com/marcodiri/micros-chess/internal/game/domain"
	"github.com/marcodiri/micros-chess/pkg/aggregate"
	"github.com/marcodiri/micros-chess/pkg/eventstore"
)

func NewGameRepository(
	store eventstore.Store,
	factory aggregate.Factory[*domain.Game],
	opts ...aggregate.RepositoryOption,
) domain.GameRepository {
	return aggregate.NewRepository[*domain.Game, domain.GameCommand, domain.GameEvent](
		domain.GameKind,
		factory,
		domain.NewGameCodec(),
		store,
		opts...,
	)
}
