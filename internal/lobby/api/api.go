//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "API=API"
package api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrGameProposalNotFound       = errors.New("game proposal not found")
	ErrUnsupportedStateTransition = errors.New("unsupported game proposal state transition")
	ErrConcurrentModification     = errors.New("game proposal was modified concurrently")
)

type GameProposalEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type API interface {
	CreateGameProposal(ctx context.Context, creatorID uuid.UUID) (uuid.UUID, error)
	CancelGameProposal(ctx context.Context, proposalID, creatorID uuid.UUID) error
	AcceptGameProposal(ctx context.Context, proposalID, acceptorID uuid.UUID) error
	GameProposalEvents(ctx context.Context, proposalID uuid.UUID) ([]GameProposalEvent, error)
}
