package domain

import (
	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/pkg/aggregate"
)

const (
	EventTypeGameCreated = "game-created"
	EventTypeMovePlayed  = "game-move-played"
	EventTypeGameEnded   = "game-ended"
)

// GameEvent is implemented only by the events of this package.
type GameEvent interface {
	aggregate.Event
	isGameEvent()
}

type GameCreated struct {
	GameID    uuid.UUID `json:"gameId"`
	Player1ID uuid.UUID `json:"player1Id"`
	Player2ID uuid.UUID `json:"player2Id"`
}

func (e GameCreated) Type() string {
	return EventTypeGameCreated
}

func (e GameCreated) AggregateID() uuid.UUID {
	return e.GameID
}

func (GameCreated) isGameEvent() {}

type MovePlayed struct {
	GameID   uuid.UUID `json:"gameId"`
	PlayerID uuid.UUID `json:"playerId"`
	Move     string    `json:"move"`
}

func (e MovePlayed) Type() string {
	return EventTypeMovePlayed
}

func (e MovePlayed) AggregateID() uuid.UUID {
	return e.GameID
}

func (MovePlayed) isGameEvent() {}

type GameEnded struct {
	GameID   uuid.UUID `json:"gameId"`
	PlayerID uuid.UUID `json:"playerId"`
	Reason   string    `json:"reason"`
}

func (e GameEnded) Type() string {
	return EventTypeGameEnded
}

func (e GameEnded) AggregateID() uuid.UUID {
	return e.GameID
}

func (GameEnded) isGameEvent() {}

func NewGameCodec(opts ...aggregate.CodecOption) *aggregate.Codec[GameEvent] {
	codec := aggregate.NewCodec[GameEvent](opts...)
	aggregate.MustRegisterEvent[GameEvent, GameCreated](codec)
	aggregate.MustRegisterEvent[GameEvent, MovePlayed](codec)
	aggregate.MustRegisterEvent[GameEvent, GameEnded](codec)
	return codec
}
