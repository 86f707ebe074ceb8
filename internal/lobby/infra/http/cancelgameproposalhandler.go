package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/internal/lobby/api"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

type cancelGameProposalHandler struct {
	lobbyService api.API
}

func NewCancelGameProposalHandler(lobbyService api.API) pkghttp.Handler {
	return cancelGameProposalHandler{lobbyService: lobbyService}
}

func (h cancelGameProposalHandler) Method() string {
	return http.MethodPost
}

func (h cancelGameProposalHandler) Path() string {
	return "/lobby/cancel-game-proposal"
}

func (h cancelGameProposalHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(_ pkghttp.ResponseWriter, r *http.Request) error {
		data, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[cancelGameProposalIn](), nil)
		if err != nil {
			return err
		}

		return h.lobbyService.CancelGameProposal(r.Context(), data.GameProposalID, data.CreatorID)
	}
}

type cancelGameProposalIn struct {
	GameProposalID uuid.UUID `json:"gameProposalId"`
	CreatorID      uuid.UUID `json:"creatorId"`
}
