package domain

import (
	"github.com/google/uuid"
)

type GameProposalCommand interface {
	isGameProposalCommand()
}

type (
	CreateGameProposalCommand struct {
		CreatorID uuid.UUID
	}

	CancelGameProposalCommand struct {
		CreatorID uuid.UUID
	}

	AcceptGameProposalCommand struct {
		AcceptorID uuid.UUID
	}
)

func (CreateGameProposalCommand) isGameProposalCommand() {}

func (CancelGameProposalCommand) isGameProposalCommand() {}

func (AcceptGameProposalCommand) isGameProposalCommand() {}
