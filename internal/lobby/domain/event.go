package domain

import (
	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/pkg/aggregate"
)

const (
	EventTypeGameProposalCreated  = "game-proposal-created"
	EventTypeGameProposalCanceled = "game-proposal-canceled"
	EventTypeGameProposalAccepted = "game-proposal-accepted"
)

// GameProposalEvent is implemented only by the events of this package.
type GameProposalEvent interface {
	aggregate.Event
	isGameProposalEvent()
}

type GameProposalCreated struct {
	GameProposalID uuid.UUID `json:"gameProposalId"`
	CreatorID      uuid.UUID `json:"creatorId"`
}

func (e GameProposalCreated) Type() string {
	return EventTypeGameProposalCreated
}

func (e GameProposalCreated) AggregateID() uuid.UUID {
	return e.GameProposalID
}

func (GameProposalCreated) isGameProposalEvent() {}

type GameProposalCanceled struct {
	GameProposalID uuid.UUID `json:"gameProposalId"`
}

func (e GameProposalCanceled) Type() string {
	return EventTypeGameProposalCanceled
}

func (e GameProposalCanceled) AggregateID() uuid.UUID {
	return e.GameProposalID
}

func (GameProposalCanceled) isGameProposalEvent() {}

type GameProposalAccepted struct {
	GameProposalID uuid.UUID `json:"gameProposalId"`
	CreatorID      uuid.UUID `json:"creatorId"`
	AcceptorID     uuid.UUID `json:"acceptorId"`
}

func (e GameProposalAccepted) Type() string {
	return EventTypeGameProposalAccepted
}

func (e GameProposalAccepted) AggregateID() uuid.UUID {
	return e.GameProposalID
}

func (GameProposalAccepted) isGameProposalEvent() {}

func NewGameProposalCodec(opts ...aggregate.CodecOption) *aggregate.Codec[GameProposalEvent] {
	codec := aggregate.NewCodec[GameProposalEvent](opts...)
	aggregate.MustRegisterEvent[GameProposalEvent, GameProposalCreated](codec)
	aggregate.MustRegisterEvent[GameProposalEvent, GameProposalCanceled](codec)
	aggregate.MustRegisterEvent[GameProposalEvent, GameProposalAccepted](codec)
	return codec
}
