package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/internal/game/api"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

type gameEventsHandler struct {
	gameService api.API
}

func NewGameEventsHandler(gameService api.API) pkghttp.Handler {
	return gameEventsHandler{gameService: gameService}
}

func (h gameEventsHandler) Method() string {
	return http.MethodGet
}

func (h gameEventsHandler) Path() string {
	return "/game/{gameID}/events"
}

func (h gameEventsHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		gameID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("gameID"), nil)
		if err != nil {
			return err
		}

		events, err := h.gameService.GameEvents(r.Context(), gameID)
		if err != nil {
			return err
		}

		w.SetJSONBody(gameEventsOut{Events: events})
		return nil
	}
}

type gameEventsOut struct {
	Events []api.GameEvent `json:"events"`
}
