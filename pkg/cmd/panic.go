package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/marcodiri/micros-chess/pkg/log"
)

// HandleAppPanic logs a panic and resumes panicking. It must be deferred directly.
func HandleAppPanic(ctx context.Context, logger log.Logger) {
	msg := recover()
	if msg == nil {
		return
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	panic(msg)
}
