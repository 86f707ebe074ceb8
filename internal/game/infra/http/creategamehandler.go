package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/internal/game/api"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

type createGameHandler struct {
	gameService api.API
}

func NewCreateGameHandler(gameService api.API) pkghttp.Handler {
	return createGameHandler{gameService: gameService}
}

func (h createGameHandler) Method() string {
	return http.MethodPost
}

func (h createGameHandler) Path() string {
	return "/game/create-game"
}

func (h createGameHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		data, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[createGameIn](), nil)
		if err != nil {
			return err
		}

		gameID, err := h.gameService.CreateGame(r.Context(), data.Player1ID, data.Player2ID)
		if err != nil {
			return err
		}

		w.SetStatusCode(http.StatusOK)
		w.SetJSONBody(createGameOut{GameID: gameID})
		return nil
	}
}

type createGameIn struct {
	Player1ID uuid.UUID `json:"player1Id"`
	Player2ID uuid.UUID `json:"player2Id"`
}

type createGameOut struct {
	GameID uuid.UUID `json:"gameId"`
}
