//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "GameProposalRepository=GameProposalRepository"
package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/pkg/aggregate"
)

const GameProposalKind = "GameProposal"

const (
	GameProposalStateNone     GameProposalState = ""
	GameProposalStatePending  GameProposalState = "PENDING"
	GameProposalStateCanceled GameProposalState = "CANCELED"
	GameProposalStateAccepted GameProposalState = "ACCEPTED"
)

type (
	GameProposalState string

	GameProposalOption func(*GameProposal)

	GameProposalRepository interface {
		Save(ctx context.Context, cmd GameProposalCommand) (*GameProposal, error)
		Update(ctx context.Context, id uuid.UUID, cmd GameProposalCommand) (*GameProposal, error)
		Load(ctx context.Context, id uuid.UUID) (*GameProposal, error)
		ReadEventsForAggregate(ctx context.Context, id uuid.UUID) ([]GameProposalEvent, error)
	}
)

func (s GameProposalState) String() string {
	if s == GameProposalStateNone {
		return "NONE"
	}

	return string(s)
}

type GameProposal struct {
	id         uuid.UUID
	creatorID  uuid.UUID
	acceptorID *uuid.UUID
	state      GameProposalState

	newID aggregate.IDGenerator
}

func WithGameProposalIDGenerator(gen aggregate.IDGenerator) GameProposalOption {
	return func(p *GameProposal) {
		p.newID = gen
	}
}

func NewGameProposalFactory(opts ...GameProposalOption) aggregate.Factory[*GameProposal] {
	return func() *GameProposal {
		proposal := &GameProposal{newID: uuid.New}
		for _, opt := range opts {
			opt(proposal)
		}

		return proposal
	}
}

func (p *GameProposal) ID() uuid.UUID {
	return p.id
}

func (p *GameProposal) CreatorID() uuid.UUID {
	return p.creatorID
}

// AcceptorID is nil until the proposal is accepted.
func (p *GameProposal) AcceptorID() *uuid.UUID {
	if p.acceptorID == nil {
		return nil
	}

	id := *p.acceptorID
	return &id
}

func (p *GameProposal) State() GameProposalState {
	return p.state
}

func (p *GameProposal) Process(cmd GameProposalCommand) ([]GameProposalEvent, error) {
	switch cmd := cmd.(type) {
	case CreateGameProposalCommand:
		return []GameProposalEvent{GameProposalCreated{
			GameProposalID: p.newID(),
			CreatorID:      cmd.CreatorID,
		}}, nil
	case CancelGameProposalCommand:
		err := p.checkTransition(GameProposalStateCanceled)
		if err != nil {
			return nil, err
		}

		return []GameProposalEvent{GameProposalCanceled{
			GameProposalID: p.id,
		}}, nil
	case AcceptGameProposalCommand:
		err := p.checkTransition(GameProposalStateAccepted)
		if err != nil {
			return nil, err
		}

		return []GameProposalEvent{GameProposalAccepted{
			GameProposalID: p.id,
			CreatorID:      p.creatorID,
			AcceptorID:     cmd.AcceptorID,
		}}, nil
	default:
		return nil, aggregate.UnknownCommandError(cmd)
	}
}

func (p *GameProposal) Apply(evt GameProposalEvent) error {
	switch evt := evt.(type) {
	case GameProposalCreated:
		p.id = evt.GameProposalID
		p.creatorID = evt.CreatorID
		p.state = GameProposalStatePending
	case GameProposalCanceled:
		p.state = GameProposalStateCanceled
	case GameProposalAccepted:
		acceptorID := evt.AcceptorID
		p.acceptorID = &acceptorID
		p.state = GameProposalStateAccepted
	default:
		return aggregate.UnknownEventError(evt)
	}

	return nil
}

func (p *GameProposal) checkTransition(target GameProposalState) error {
	if p.state != GameProposalStatePending {
		return UnsupportedStateTransitionError{Current: p.state, Target: target}
	}

	return nil
}
