package main

import (
	"context"

	"github.com/marcodiri/micros-chess/internal/pkg/cmd"
	pkgcmd "github.com/marcodiri/micros-chess/pkg/cmd"
	"github.com/marcodiri/micros-chess/pkg/worker"
)

const serviceName = "event-outbox-worker"

func main() {
	ctx, cancel := pkgcmd.WithTermSignals(context.Background())
	defer cancel()

	cfg := cmd.MustLoadConfig()
	infra := cmd.NewInfrastructureContainer(ctx, cfg, serviceName)
	defer infra.Close(context.WithoutCancel(ctx))

	logger := infra.Logger.MustLoad()
	defer pkgcmd.HandleAppPanic(ctx, logger)

	msgOutbox := infra.MessageOutbox.MustLoad()

	worker.MustRunHub(ctx, logger,
		msgOutbox.Worker,
		worker.PeriodicRunner(func(context.Context) { msgOutbox.Process() }, cfg.Outbox.Interval),
	)
}
