package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/internal/lobby/api"
	"github.com/marcodiri/micros-chess/internal/lobby/domain"
	"github.com/marcodiri/micros-chess/pkg/eventstore"
)

type LobbyService struct {
	proposalRepo domain.GameProposalRepository
}

func NewLobbyService(proposalRepo domain.GameProposalRepository) *LobbyService {
	return &LobbyService{proposalRepo: proposalRepo}
}

func (s *LobbyService) CreateGameProposal(ctx context.Context, creatorID uuid.UUID) (uuid.UUID, error) {
	proposal, err := s.proposalRepo.Save(ctx, domain.CreateGameProposalCommand{CreatorID: creatorID})
	if err != nil {
		return uuid.Nil, fmt.Errorf("create game proposal: %w", translateError(err))
	}

	return proposal.ID(), nil
}

func (s *LobbyService) CancelGameProposal(ctx context.Context, proposalID, creatorID uuid.UUID) error {
	_, err := s.proposalRepo.Update(ctx, proposalID, domain.CancelGameProposalCommand{CreatorID: creatorID})
	if err != nil {
		return fmt.Errorf("cancel game proposal %s: %w", proposalID, translateError(err))
	}

	return nil
}

func (s *LobbyService) AcceptGameProposal(ctx context.Context, proposalID, acceptorID uuid.UUID) error {
	_, err := s.proposalRepo.Update(ctx, proposalID, domain.AcceptGameProposalCommand{AcceptorID: acceptorID})
	if err != nil {
		return fmt.Errorf("accept game proposal %s: %w", proposalID, translateError(err))
	}

	return nil
}

func (s *LobbyService) GameProposalEvents(ctx context.Context, proposalID uuid.UUID) ([]api.GameProposalEvent, error) {
	events, err := s.proposalRepo.ReadEventsForAggregate(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("read events of game proposal %s: %w", proposalID, err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("read events of game proposal %s: %w", proposalID, api.ErrGameProposalNotFound)
	}

	result := make([]api.GameProposalEvent, 0, len(events))
	for _, evt := range events {
		data, err := json.Marshal(evt)
		if err != nil {
			return nil, fmt.Errorf("encode %s event: %w", evt.Type(), err)
		}
		result = append(result, api.GameProposalEvent{
			Type: evt.Type(),
			Data: data,
		})
	}

	return result, nil
}

func translateError(err error) error {
	var transitionErr domain.UnsupportedStateTransitionError
	switch {
	case errors.As(err, &transitionErr):
		return fmt.Errorf("%w: %w", api.ErrUnsupportedStateTransition, err)
	case errors.Is(err, eventstore.ErrConcurrentModification):
		return fmt.Errorf("%w: %w", api.ErrConcurrentModification, err)
	default:
		return err
	}
}
