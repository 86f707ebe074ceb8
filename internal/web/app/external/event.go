package external

import (
	"github.com/google/uuid"
)

const EventTypeGameProposalAccepted = "game-proposal-accepted"

type EventGameProposalAccepted struct {
	GameProposalID uuid.UUID `json:"gameProposalId"`
	CreatorID      uuid.UUID `json:"creatorId"`
	AcceptorID     uuid.UUID `json:"acceptorId"`
}
