package worker_test

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodiri/micros-chess/pkg/log"
	"github.com/marcodiri/micros-chess/pkg/worker"
)

func waitForCancel(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestRunHub(t *testing.T) {
	t.Parallel()

	errFailed := errors.New("failed")
	tests := []struct {
		name        string
		processes   []worker.ErrorJob
		cancelAfter time.Duration
		expectErr   error
		expectLog   string
	}{
		{
			name: "process error stops the hub",
			processes: []worker.ErrorJob{
				waitForCancel,
				func(context.Context) error { return errFailed },
			},
			expectErr: errFailed,
			expectLog: `"error":"failed"`,
		},
		{
			name: "completed process stops the hub",
			processes: []worker.ErrorJob{
				waitForCancel,
				func(context.Context) error { return nil },
			},
		},
		{
			name: "parent cancellation",
			processes: []worker.ErrorJob{
				waitForCancel,
				waitForCancel,
			},
			cancelAfter: 10 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancelAfter > 0 {
				time.AfterFunc(tt.cancelAfter, cancel)
			}

			buf := &bytes.Buffer{}
			err := worker.RunHub(ctx, log.NewWithWriter(buf, log.LevelInfo), tt.processes[0], tt.processes[1:]...)
			if tt.expectErr != nil {
				require.ErrorIs(t, err, tt.expectErr)
			} else {
				require.NoError(t, err)
			}
			if tt.expectLog != "" {
				assert.Contains(t, buf.String(), tt.expectLog)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestMustRunHub_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		worker.MustRunHub(context.Background(), log.NewStub(), func(context.Context) error {
			return errors.New("failed")
		})
	})
}

func TestPeriodicRunner(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	job := worker.PeriodicRunner(func(context.Context) {
		if calls.Add(1) == 3 {
			cancel()
		}
	}, time.Millisecond)

	err := job(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestWrapJobError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	job := worker.WrapJobError(func(context.Context) error {
		return errors.New("outbox unavailable")
	}, log.NewWithWriter(buf, log.LevelInfo))

	job(context.Background())
	assert.Contains(t, buf.String(), `"error":"outbox unavailable"`)
	assert.Contains(t, buf.String(), "job completed with error")
}
