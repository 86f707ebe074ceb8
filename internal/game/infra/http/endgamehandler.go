package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/internal/game/api"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

type endGameHandler struct {
	gameService api.API
}

func NewEndGameHandler(gameService api.API) pkghttp.Handler {
	return endGameHandler{gameService: gameService}
}

func (h endGameHandler) Method() string {
	return http.MethodPost
}

func (h endGameHandler) Path() string {
	return "/game/end-game"
}

func (h endGameHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(_ pkghttp.ResponseWriter, r *http.Request) error {
		data, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[endGameIn](), nil)
		if err != nil {
			return err
		}

		return h.gameService.EndGame(r.Context(), data.GameID, data.PlayerID, data.Reason)
	}
}

type endGameIn struct {
	GameID   uuid.UUID `json:"gameId"`
	PlayerID uuid.UUID `json:"playerId"`
	Reason   string    `json:"reason"`
}
