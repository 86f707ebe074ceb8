package gameservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/internal/web/app/external"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

type service struct {
	client pkghttp.Client
}

func NewService(client pkghttp.Client) external.GameService {
	return service{client: client}
}

func (s service) CreateGame(ctx context.Context, player1ID, player2ID uuid.UUID) (uuid.UUID, error) {
	var out createGameOut
	err := pkghttp.CheckResponse(
		s.client.NewRequest(ctx).
			SetBody(createGameIn{Player1ID: player1ID, Player2ID: player2ID}).
			SetResult(&out).
			Post("/game/create-game"),
	)

	var respErr *pkghttp.ResponseError
	if errors.As(err, &respErr) && respErr.StatusCode < http.StatusInternalServerError {
		return uuid.Nil, fmt.Errorf("%w: %w", external.ErrGameRejected, err)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("create game: %w", err)
	}

	return out.GameID, nil
}

type createGameIn struct {
	Player1ID uuid.UUID `json:"player1Id"`
	Player2ID uuid.UUID `json:"player2Id"`
}

type createGameOut struct {
	GameID uuid.UUID `json:"gameId"`
}
