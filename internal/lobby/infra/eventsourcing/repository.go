package eventsourcing

import (
	"github.com/marcodiri/micros-chess/internal/lobby/domain"
	"github.com/marcodiri/micros-chess/pkg/aggregate"
	"github.com/marcodiri/micros-chess/pkg/eventstore"
)

func NewGameProposalRepository(
	store eventstore.Store,
	factory aggregate.Factory[*domain.GameProposal],
	opts ...aggregate.RepositoryOption,
) domain.GameProposalRepository {
	return aggregate.NewRepository[*domain.GameProposal, domain.GameProposalCommand, domain.GameProposalEvent](
		domain.GameProposalKind,
		factory,
		domain.NewGameProposalCodec(),
		store,
		opts...,
	)
}
