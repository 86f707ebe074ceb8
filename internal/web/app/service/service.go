package service

import (
	"context"
	"fmt"

	"github.com/marcodiri/micros-chess/internal/web/app/external"
	"github.com/marcodiri/micros-chess/pkg/log"
)

type MatchmakingService struct {
	gameService external.GameService
	logger      log.Logger
}

func NewMatchmakingService(gameService external.GameService, logger log.Logger) *MatchmakingService {
	return &MatchmakingService{
		gameService: gameService,
		logger:      logger,
	}
}

// HandleGameProposalAccepted starts a game between the proposal creator and the acceptor.
func (s *MatchmakingService) HandleGameProposalAccepted(ctx context.Context, evt external.EventGameProposalAccepted) error {
	gameID, err := s.gameService.CreateGame(ctx, evt.CreatorID, evt.AcceptorID)
	if err != nil {
		return fmt.Errorf("create game for proposal %s: %w", evt.GameProposalID, err)
	}

	s.logger.With(log.Fields{
		"gameProposalID": evt.GameProposalID,
		"gameID":         gameID,
	}).Info(ctx, "game created for accepted proposal")
	return nil
}
