package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/internal/lobby/api"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

type createGameProposalHandler struct {
	lobbyService api.API
}

func NewCreateGameProposalHandler(lobbyService api.API) pkghttp.Handler {
	return createGameProposalHandler{lobbyService: lobbyService}
}

func (h createGameProposalHandler) Method() string {
	return http.MethodPost
}

func (h createGameProposalHandler) Path() string {
	return "/lobby/create-game-proposal"
}

func (h createGameProposalHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		data, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[createGameProposalIn](), nil)
		if err != nil {
			return err
		}

		proposalID, err := h.lobbyService.CreateGameProposal(r.Context(), data.CreatorID)
		if err != nil {
			return err
		}

		w.SetStatusCode(http.StatusOK)
		w.SetJSONBody(createGameProposalOut{GameProposalID: proposalID})
		return nil
	}
}

type createGameProposalIn struct {
	CreatorID uuid.UUID `json:"creatorId"`
}

type createGameProposalOut struct {
	GameProposalID uuid.UUID `json:"gameProposalId"`
}
