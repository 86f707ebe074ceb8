package gameservice_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodiri/micros-chess/internal/web/app/external"
	"github.com/marcodiri/micros-chess/internal/web/infra/gameservice"
	pkghttp "github.com/marcodiri/micros-chess/pkg/http"
)

func TestService_CreateGame(t *testing.T) {
	gameID := uuid.New()
	player1, player2 := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		expect  func(t *testing.T, id uuid.UUID, err error)
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var in map[string]string
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
				assert.Equal(t, player1.String(), in["player1Id"])
				assert.Equal(t, player2.String(), in["player2Id"])

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = fmt.Fprintf(w, `{"gameId":%q}`, gameID)
			},
			expect: func(t *testing.T, id uuid.UUID, err error) {
				require.NoError(t, err)
				assert.Equal(t, gameID, id)
			},
		},
		{
			name: "rejected_on_client_error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			expect: func(t *testing.T, _ uuid.UUID, err error) {
				require.ErrorIs(t, err, external.ErrGameRejected)
			},
		},
		{
			name: "retryable_on_server_error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			expect: func(t *testing.T, _ uuid.UUID, err error) {
				require.Error(t, err)
				assert.NotErrorIs(t, err, external.ErrGameRejected)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/game/create-game", r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)
				tc.handler(w, r)
			}))
			defer srv.Close()

			client := pkghttp.NewClient(pkghttp.WithClientDestination("game-service", srv.URL))
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			id, err := gameservice.NewService(client).CreateGame(ctx, player1, player2)
			tc.expect(t, id, err)
		})
	}
}
