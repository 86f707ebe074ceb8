//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "GameRepository=GameRepository"
package domain

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/marcodiri/micros-chess/pkg/aggregate"
)

const GameKind = "Game"

const (
	GameStateNone       GameState = ""
	GameStateInProgress GameState = "IN_PROGRESS"
	GameStateEnded      GameState = "ENDED"
)

type (
	GameState string

	Move struct {
		PlayerID uuid.UUID
		Move     string
	}

	// MoveValidator decides whether a move may be played after the given history.
	MoveValidator func(history []Move, playerID uuid.UUID, move string) bool

	GameOption func(*Game)

	GameRepository interface {
		Save(ctx context.Context, cmd GameCommand) (*Game, error)
		Update(ctx context.Context, id uuid.UUID, cmd GameCommand) (*Game, error)
		Load(ctx context.Context, id uuid.UUID) (*Game, error)
		ReadEventsForAggregate(ctx context.Context, id uuid.UUID) ([]GameEvent, error)
	}
)

func (s GameState) String() string {
	if s == GameStateNone {
		return "NONE"
	}

	return string(s)
}

// AnyMoveIsLegal accepts every move, no chess rules are enforced.
func AnyMoveIsLegal([]Move, uuid.UUID, string) bool {
	return true
}

type Game struct {
	id        uuid.UUID
	player1ID uuid.UUID
	player2ID uuid.UUID
	moves     []Move
	state     GameState

	newID       aggregate.IDGenerator
	isMoveLegal MoveValidator
}

func WithGameIDGenerator(gen aggregate.IDGenerator) GameOption {
	return func(g *Game) {
		g.newID = gen
	}
}

func WithMoveValidator(validator MoveValidator) GameOption {
	return func(g *Game) {
		g.isMoveLegal = validator
	}
}

func NewGameFactory(opts ...GameOption) aggregate.Factory[*Game] {
	return func() *Game {
		game := &Game{
			newID:       uuid.New,
			isMoveLegal: AnyMoveIsLegal,
		}
		for _, opt := range opts {
			opt(game)
		}

		return game
	}
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Player1ID() uuid.UUID {
	return g.player1ID
}

func (g *Game) Player2ID() uuid.UUID {
	return g.player2ID
}

func (g *Game) Moves() []Move {
	return slices.Clone(g.moves)
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Process(cmd GameCommand) ([]GameEvent, error) {
	switch cmd := cmd.(type) {
	case CreateGameCommand:
		return []GameEvent{GameCreated{
			GameID:    g.newID(),
			Player1ID: cmd.Player1ID,
			Player2ID: cmd.Player2ID,
		}}, nil
	case PlayMoveCommand:
		if g.state != GameStateInProgress {
			return nil, GameNotInProgressError{State: g.state}
		}
		if !g.isMoveLegal(g.Moves(), cmd.PlayerID, cmd.Move) {
			return nil, IllegalMoveError{Move: cmd.Move}
		}

		return []GameEvent{MovePlayed{
			GameID:   g.id,
			PlayerID: cmd.PlayerID,
			Move:     cmd.Move,
		}}, nil
	case EndGameCommand:
		if g.state != GameStateInProgress {
			return nil, GameNotInProgressError{State: g.state}
		}

		return []GameEvent{GameEnded{
			GameID:   g.id,
			PlayerID: cmd.PlayerID,
			Reason:   cmd.Reason,
		}}, nil
	default:
		return nil, aggregate.UnknownCommandError(cmd)
	}
}

func (g *Game) Apply(evt GameEvent) error {
	switch evt := evt.(type) {
	case GameCreated:
		g.id = evt.GameID
		g.player1ID = evt.Player1ID
		g.player2ID = evt.Player2ID
		g.moves = []Move{}
		g.state = GameStateInProgress
	case MovePlayed:
		g.moves = append(g.moves, Move{
			PlayerID: evt.PlayerID,
			Move:     evt.Move,
		})
	case GameEnded:
		g.state = GameStateEnded
	default:
		return aggregate.UnknownEventError(evt)
	}

	return nil
}
