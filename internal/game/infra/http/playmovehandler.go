package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/internal/game/api"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

type playMoveHandler struct {
	gameService api.API
}

func NewPlayMoveHandler(gameService api.API) pkghttp.Handler {
	return playMoveHandler{gameService: gameService}
}

func (h playMoveHandler) Method() string {
	return http.MethodPost
}

func (h playMoveHandler) Path() string {
	return "/game/play-move"
}

func (h playMoveHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(_ pkghttp.ResponseWriter, r *http.Request) error {
		data, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[playMoveIn](), nil)
		if err != nil {
			return err
		}

		return h.gameService.PlayMove(r.Context(), data.GameID, data.PlayerID, data.Move)
	}
}

type playMoveIn struct {
	GameID   uuid.UUID `json:"gameId"`
	PlayerID uuid.UUID `json:"playerId"`
	Move     string    `json:"move"`
}
