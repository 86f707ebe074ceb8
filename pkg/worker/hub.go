package worker

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/marcodiri/micros-chess/pkg/log"
)

var errProcessCompleted = errors.New("process completed")

func MustRunHub(ctx context.Context, logger log.Logger, process ErrorJob, processes ...ErrorJob) {
	err := RunHub(ctx, logger, process, processes...)
	if err != nil {
		panic(fmt.Errorf("process completed with error: %w", err))
	}
}

// RunHub runs the processes until the first of them returns, then cancels the rest.
// Context cancellation and a clean return are not reported as errors.
func RunHub(ctx context.Context, logger log.Logger, process ErrorJob, processes ...ErrorJob) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, p := range append([]ErrorJob{process}, processes...) {
		p := p
		group.Go(func() error {
			err := p(groupCtx)
			switch {
			case err == nil:
				return errProcessCompleted
			case errors.Is(err, context.Canceled) && groupCtx.Err() != nil:
				return err
			}

			logger.WithError(err).Error(groupCtx, "process completed with error")
			return err
		})
	}

	err := group.Wait()
	if errors.Is(err, errProcessCompleted) || errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
