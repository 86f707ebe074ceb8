package cmd

import (
	"context"
	"os/signal"
	"syscall"
)

// WithTermSignals returns a context canceled on SIGTERM or SIGINT.
func WithTermSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
}
