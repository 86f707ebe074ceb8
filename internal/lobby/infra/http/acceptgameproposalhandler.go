package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/internal/lobby/api"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

type acceptGameProposalHandler struct {
	lobbyService api.API
}

func NewAcceptGameProposalHandler(lobbyService api.API) pkghttp.Handler {
	return acceptGameProposalHandler{lobbyService: lobbyService}
}

func (h acceptGameProposalHandler) Method() string {
	return http.MethodPost
}

func (h acceptGameProposalHandler) Path() string {
	return "/lobby/accept-game-proposal"
}

func (h acceptGameProposalHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(_ pkghttp.ResponseWriter, r *http.Request) error {
		data, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[acceptGameProposalIn](), nil)
		if err != nil {
			return err
		}

		return h.lobbyService.AcceptGameProposal(r.Context(), data.GameProposalID, data.AcceptorID)
	}
}

type acceptGameProposalIn struct {
	GameProposalID uuid.UUID `json:"gameProposalId"`
	AcceptorID     uuid.UUID `json:"acceptorId"`
}
