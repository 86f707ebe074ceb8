package domain

import (
	"github.com/google/uuid"
)

type GameCommand interface {
	isGameCommand()
}

type (
	CreateGameCommand struct {
		Player1ID uuid.UUID
		Player2ID uuid.UUID
	}

	PlayMoveCommand struct {
		PlayerID uuid.UUID
		Move     string
	}

	EndGameCommand struct {
		PlayerID uuid.UUID
		Reason   string
	}
)

func (CreateGameCommand) isGameCommand() {}

func (PlayMoveCommand) isGameCommand() {}

func (EndGameCommand) isGameCommand() {}
