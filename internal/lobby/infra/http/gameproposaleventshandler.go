package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/internal/lobby/api"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

type gameProposalEventsHandler struct {
	lobbyService api.API
}

func NewGameProposalEventsHandler(lobbyService api.API) pkghttp.Handler {
	return gameProposalEventsHandler{lobbyService: lobbyService}
}

func (h gameProposalEventsHandler) Method() string {
	return http.MethodGet
}

func (h gameProposalEventsHandler) Path() string {
	return "/lobby/{gameProposalID}/events"
}

func (h gameProposalEventsHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		proposalID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("gameProposalID"), nil)
		if err != nil {
			return err
		}

		events, err := h.lobbyService.GameProposalEvents(r.Context(), proposalID)
		if err != nil {
			return err
		}

		w.SetJSONBody(gameProposalEventsOut{Events: events})
		return nil
	}
}

type gameProposalEventsOut struct {
	Events []api.GameProposalEvent `json:"events"`
}
