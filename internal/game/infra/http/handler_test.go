package http_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/marcodiri/micros-chess/internal/game/api"
	gameapimock "github.com/marcodiri/micros-chess/internal/game/api/mock"
	gamehttp "github.com/marcodiri/micros-chess/internal/game/infra/http"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

var (
	gameID  = uuid.MustParse("0b5f3c4e-1111-4a2b-9c3d-000000000001")
	player1 = uuid.MustParse("0b5f3c4e-1111-4a2b-9c3d-000000000002")
	player2 = uuid.MustParse("0b5f3c4e-1111-4a2b-9c3d-000000000003")
)

func newServer(gameService api.API) pkghttp.Server {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, gamehttp.WithErrorMapping())
	srv.Register(
		gamehttp.NewPingHandler(),
		gamehttp.NewCreateGameHandler(gameService),
		gamehttp.NewPlayMoveHandler(gameService),
		gamehttp.NewEndGameHandler(gameService),
		gamehttp.NewGameEventsHandler(gameService),
	)
	return srv
}

func TestGameHandlers(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		body        string
		gameService func(ctrl *gomock.Controller) api.API
		expectCode  int
		expectBody  string
	}{
		{
			name:       "ping",
			method:     http.MethodGet,
			target:     "/game/ping",
			expectCode: http.StatusOK,
			expectBody: `{"message":"pong"}`,
		},
		{
			name:   "create_game",
			method: http.MethodPost,
			target: "/game/create-game",
			body:   fmt.Sprintf(`{"player1Id":%q,"player2Id":%q}`, player1, player2),
			gameService: func(ctrl *gomock.Controller) api.API {
				mock := gameapimock.NewAPI(ctrl)
				mock.EXPECT().CreateGame(gomock.Any(), player1, player2).Return(gameID, nil)
				return mock
			},
			expectCode: http.StatusOK,
			expectBody: fmt.Sprintf(`{"gameId":%q}`, gameID),
		},
		{
			name:       "create_game_with_malformed_body",
			method:     http.MethodPost,
			target:     "/game/create-game",
			body:       `{"player1Id":"not-a-uuid"}`,
			expectCode: http.StatusBadRequest,
		},
		{
			name:   "play_move",
			method: http.MethodPost,
			target: "/game/play-move",
			body:   fmt.Sprintf(`{"gameId":%q,"playerId":%q,"move":"e4"}`, gameID, player1),
			gameService: func(ctrl *gomock.Controller) api.API {
				mock := gameapimock.NewAPI(ctrl)
				mock.EXPECT().PlayMove(gomock.Any(), gameID, player1, "e4").Return(nil)
				return mock
			},
			expectCode: http.StatusOK,
		},
		{
			name:   "play_move_in_ended_game",
			method: http.MethodPost,
			target: "/game/play-move",
			body:   fmt.Sprintf(`{"gameId":%q,"playerId":%q,"move":"e4"}`, gameID, player1),
			gameService: func(ctrl *gomock.Controller) api.API {
				mock := gameapimock.NewAPI(ctrl)
				mock.EXPECT().PlayMove(gomock.Any(), gameID, player1, "e4").Return(api.ErrGameNotInProgress)
				return mock
			},
			expectCode: http.StatusBadRequest,
			expectBody: `{"error":"game is not in progress"}`,
		},
		{
			name:   "play_illegal_move",
			method: http.MethodPost,
			target: "/game/play-move",
			body:   fmt.Sprintf(`{"gameId":%q,"playerId":%q,"move":"e9"}`, gameID, player1),
			gameService: func(ctrl *gomock.Controller) api.API {
				mock := gameapimock.NewAPI(ctrl)
				mock.EXPECT().PlayMove(gomock.Any(), gameID, player1, "e9").Return(fmt.Errorf("play move: %w", api.ErrIllegalMove))
				return mock
			},
			expectCode: http.StatusBadRequest,
		},
		{
			name:   "play_move_concurrently",
			method: http.MethodPost,
			target: "/game/play-move",
			body:   fmt.Sprintf(`{"gameId":%q,"playerId":%q,"move":"e4"}`, gameID, player1),
			gameService: func(ctrl *gomock.Controller) api.API {
				mock := gameapimock.NewAPI(ctrl)
				mock.EXPECT().PlayMove(gomock.Any(), gameID, player1, "e4").Return(api.ErrConcurrentModification)
				return mock
			},
			expectCode: http.StatusConflict,
		},
		{
			name:   "end_game",
			method: http.MethodPost,
			target: "/game/end-game",
			body:   fmt.Sprintf(`{"gameId":%q,"playerId":%q,"reason":"resign"}`, gameID, player2),
			gameService: func(ctrl *gomock.Controller) api.API {
				mock := gameapimock.NewAPI(ctrl)
				mock.EXPECT().EndGame(gomock.Any(), gameID, player2, "resign").Return(nil)
				return mock
			},
			expectCode: http.StatusOK,
		},
		{
			name:   "end_game_with_unexpected_error",
			method: http.MethodPost,
			target: "/game/end-game",
			body:   fmt.Sprintf(`{"gameId":%q,"playerId":%q,"reason":"resign"}`, gameID, player2),
			gameService: func(ctrl *gomock.Controller) api.API {
				mock := gameapimock.NewAPI(ctrl)
				mock.EXPECT().EndGame(gomock.Any(), gameID, player2, "resign").Return(errors.New("unexpected"))
				return mock
			},
			expectCode: http.StatusInternalServerError,
		},
		{
			name:   "game_events",
			method: http.MethodGet,
			target: fmt.Sprintf("/game/%s/events", gameID),
			gameService: func(ctrl *gomock.Controller) api.API {
				mock := gameapimock.NewAPI(ctrl)
				mock.EXPECT().GameEvents(gomock.Any(), gameID).Return([]api.GameEvent{
					{Type: "game-move-played", Data: json.RawMessage(`{"move":"e4"}`)},
				}, nil)
				return mock
			},
			expectCode: http.StatusOK,
			expectBody: `{"events":[{"type":"game-move-played","data":{"move":"e4"}}]}`,
		},
		{
			name:   "game_events_of_missing_game",
			method: http.MethodGet,
			target: fmt.Sprintf("/game/%s/events", gameID),
			gameService: func(ctrl *gomock.Controller) api.API {
				mock := gameapimock.NewAPI(ctrl)
				mock.EXPECT().GameEvents(gomock.Any(), gameID).Return(nil, api.ErrGameNotFound)
				return mock
			},
			expectCode: http.StatusNotFound,
		},
		{
			name:       "game_events_with_invalid_id",
			method:     http.MethodGet,
			target:     "/game/42/events",
			expectCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			var gameService api.API = gameapimock.NewAPI(ctrl)
			if tc.gameService != nil {
				gameService = tc.gameService(ctrl)
			}

			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			newServer(gameService).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectCode, rec.Code)
			if tc.expectBody != "" {
				assert.JSONEq(t, tc.expectBody, rec.Body.String())
			}
		})
	}
}
