package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/internal/game/api"
	"github.com/marcodiri/micros-chess/internal/game/domain"
	"github.com/marcodiri/micros-chess/pkg/eventstore"
)

type GameService struct {
	gameRepo domain.GameRepository
}

func NewGameService(gameRepo domain.GameRepository) *GameService {
	return &GameService{gameRepo: gameRepo}
}

func (s *GameService) CreateGame(ctx context.Context, player1ID, player2ID uuid.UUID) (uuid.UUID, error) {
	game, err := s.gameRepo.Save(ctx, domain.CreateGameCommand{
		Player1ID: player1ID,
		Player2ID: player2ID,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("create game: %w", translateError(err))
	}

	return game.ID(), nil
}

func (s *GameService) PlayMove(ctx context.Context, gameID, playerID uuid.UUID, move string) error {
	_, err := s.gameRepo.Update(ctx, gameID, domain.PlayMoveCommand{
		PlayerID: playerID,
		Move:     move,
	})
	if err != nil {
		return fmt.Errorf("play move in game %s: %w", gameID, translateError(err))
	}

	return nil
}

func (s *GameService) EndGame(ctx context.Context, gameID, playerID uuid.UUID, reason string) error {
	_, err := s.gameRepo.Update(ctx, gameID, domain.EndGameCommand{
		PlayerID: playerID,
		Reason:   reason,
	})
	if err != nil {
		return fmt.Errorf("end game %s: %w", gameID, translateError(err))
	}

	return nil
}

func (s *GameService) GameEvents(ctx context.Context, gameID uuid.UUID) ([]api.GameEvent, error) {
	events, err := s.gameRepo.ReadEventsForAggregate(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("read events of game %s: %w", gameID, err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("read events of game %s: %w", gameID, api.ErrGameNotFound)
	}

	result := make([]api.GameEvent, 0, len(events))
	for _, evt := range events {
		data, err := json.Marshal(evt)
		if err != nil {
			return nil, fmt.Errorf("encode %s event: %w", evt.Type(), err)
		}
		result = append(result, api.GameEvent{
			Type: evt.Type(),
			Data: data,
		})
	}

	return result, nil
}

func translateError(err error) error {
	var (
		notInProgress domain.GameNotInProgressError
		illegalMove   domain.IllegalMoveError
	)
	switch {
	case errors.As(err, &notInProgress):
		return fmt.Errorf("%w: %w", api.ErrGameNotInProgress, err)
	case errors.As(err, &illegalMove):
		return fmt.Errorf("%w: %w", api.ErrIllegalMove, err)
	case errors.Is(err, eventstore.ErrConcurrentModification):
		return fmt.Errorf("%w: %w", api.ErrConcurrentModification, err)
	default:
		return err
	}
}
