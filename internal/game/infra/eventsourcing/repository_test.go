package eventsourcing_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodiri/micros-chess/internal/game/domain"
	"github.com/marcodiri/micros-chess/internal/game/infra/eventsourcing"
	"github.com/marcodiri/micros-chess/pkg/aggregate"
	"github.com/marcodiri/micros-chess/pkg/eventstore"
)

var (
	gameID  = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	player1 = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	player2 = uuid.MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
)

func newRepository(store eventstore.Store, opts ...domain.GameOption) domain.GameRepository {
	opts = append([]domain.GameOption{domain.WithGameIDGenerator(func() uuid.UUID { return gameID })}, opts...)
	return eventsourcing.NewGameRepository(store, domain.NewGameFactory(opts...))
}

func TestGameRepository_SaveWritesCreatedEvent(t *testing.T) {
	t.Parallel()

	store := eventstore.NewMemoryStore()
	repo := newRepository(store)

	game, err := repo.Save(context.Background(), domain.CreateGameCommand{Player1ID: player1, Player2ID: player2})
	require.NoError(t, err)
	assert.Equal(t, gameID, game.ID())
	assert.Equal(t, domain.GameStateInProgress, game.State())

	events, err := store.ReadStreamForward(context.Background(), "Game_6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypeGameCreated, events[0].Type)
	assert.Equal(t, eventstore.Version(1), events[0].Version)
	assert.JSONEq(t, `{
		"gameId": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"player1Id": "6ba7b811-9dad-11d1-80b4-00c04fd430c8",
		"player2Id": "6ba7b812-9dad-11d1-80b4-00c04fd430c8"
	}`, string(events[0].Payload))
}

func TestGameRepository_UpdateAppendsMoves(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newRepository(eventstore.NewMemoryStore())

	_, err := repo.Save(ctx, domain.CreateGameCommand{Player1ID: player1, Player2ID: player2})
	require.NoError(t, err)
	_, err = repo.Update(ctx, gameID, domain.PlayMoveCommand{PlayerID: player1, Move: "e4"})
	require.NoError(t, err)
	game, err := repo.Update(ctx, gameID, domain.PlayMoveCommand{PlayerID: player2, Move: "e5"})
	require.NoError(t, err)

	assert.Equal(t, []domain.Move{
		{PlayerID: player1, Move: "e4"},
		{PlayerID: player2, Move: "e5"},
	}, game.Moves())

	events, err := repo.ReadEventsForAggregate(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, []domain.GameEvent{
		domain.GameCreated{GameID: gameID, Player1ID: player1, Player2ID: player2},
		domain.MovePlayed{GameID: gameID, PlayerID: player1, Move: "e4"},
		domain.MovePlayed{GameID: gameID, PlayerID: player2, Move: "e5"},
	}, events)

	loaded, err := repo.Load(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, game.Moves(), loaded.Moves())
}

func TestGameRepository_EndedGameRejectsMoves(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := eventstore.NewMemoryStore()
	repo := newRepository(store)

	_, err := repo.Save(ctx, domain.CreateGameCommand{Player1ID: player1, Player2ID: player2})
	require.NoError(t, err)
	_, err = repo.Update(ctx, gameID, domain.EndGameCommand{PlayerID: player2, Reason: "resign"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, gameID, domain.PlayMoveCommand{PlayerID: player1, Move: "e4"})
	require.ErrorIs(t, err, aggregate.ErrInvalidStateTransition)
	var notInProgress domain.GameNotInProgressError
	require.ErrorAs(t, err, &notInProgress)
	assert.Equal(t, domain.GameStateEnded, notInProgress.State)

	events, err := store.ReadStreamForward(ctx, aggregate.StreamName(domain.GameKind, gameID))
	require.NoError(t, err)
	assert.Len(t, events, 2, "a rejected command appends nothing")
}

func TestGameRepository_IllegalMoveIsRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	onlyPawnMoves := func(_ []domain.Move, _ uuid.UUID, move string) bool {
		return len(move) == 2
	}
	repo := newRepository(eventstore.NewMemoryStore(), domain.WithMoveValidator(onlyPawnMoves))

	_, err := repo.Save(ctx, domain.CreateGameCommand{Player1ID: player1, Player2ID: player2})
	require.NoError(t, err)

	_, err = repo.Update(ctx, gameID, domain.PlayMoveCommand{PlayerID: player1, Move: "Nf3"})
	var illegal domain.IllegalMoveError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, "Nf3", illegal.Move)
}

func TestGameRepository_UpdateMissingGame(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newRepository(eventstore.NewMemoryStore())

	_, err := repo.Update(ctx, gameID, domain.PlayMoveCommand{PlayerID: player1, Move: "e4"})
	var notInProgress domain.GameNotInProgressError
	require.ErrorAs(t, err, &notInProgress)
	assert.Equal(t, domain.GameStateNone, notInProgress.State)

	events, err := repo.ReadEventsForAggregate(ctx, gameID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestGameRepository_DecodesExternallyAppendedPayload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := eventstore.NewMemoryStore()
	payload, err := json.Marshal(map[string]string{
		"gameId":    gameID.String(),
		"player1Id": player1.String(),
		"player2Id": player2.String(),
	})
	require.NoError(t, err)

	_, err = store.AppendToStream(ctx, aggregate.StreamName(domain.GameKind, gameID), eventstore.VersionNoStream, []eventstore.Record{
		{ID: uuid.New(), Type: domain.EventTypeGameCreated, Payload: payload},
	})
	require.NoError(t, err)

	game, err := newRepository(store).Load(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, player1, game.Player1ID())
	assert.Equal(t, player2, game.Player2ID())
	assert.Equal(t, domain.GameStateInProgress, game.State())
}

func TestGameRepository_RejectsPayloadWithUnknownFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := eventstore.NewMemoryStore()
	payload, err := json.Marshal(map[string]string{
		"type":      domain.EventTypeGameCreated,
		"gameId":    gameID.String(),
		"player1Id": player1.String(),
		"player2Id": player2.String(),
	})
	require.NoError(t, err)

	_, err = store.AppendToStream(ctx, aggregate.StreamName(domain.GameKind, gameID), eventstore.VersionNoStream, []eventstore.Record{
		{ID: uuid.New(), Type: domain.EventTypeGameCreated, Payload: payload},
	})
	require.NoError(t, err)

	_, err = newRepository(store).Load(ctx, gameID)
	require.ErrorIs(t, err, aggregate.ErrEventDecoding)
}
