//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "API=API"
package api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrGameNotFound           = errors.New("game not found")
	ErrGameNotInProgress      = errors.New("game is not in progress")
	ErrIllegalMove            = errors.New("illegal move")
	ErrConcurrentModification = errors.New("game was modified concurrently")
)

// GameEvent is a recorded game event in its wire form.
type GameEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type API interface {
	CreateGame(ctx context.Context, player1ID, player2ID uuid.UUID) (uuid.UUID, error)
	PlayMove(ctx context.Context, gameID, playerID uuid.UUID, move string) error
	EndGame(ctx context.Context, gameID, playerID uuid.UUID, reason string) error
	GameEvents(ctx context.Context, gameID uuid.UUID) ([]GameEvent, error)
}
