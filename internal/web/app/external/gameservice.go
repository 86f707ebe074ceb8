//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "GameService=GameService"
package external

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrGameRejected means the game service refused the request and a retry would not help.
var ErrGameRejected = errors.New("game service rejected the request")

type GameService interface {
	CreateGame(ctx context.Context, player1ID, player2ID uuid.UUID) (uuid.UUID, error)
}
