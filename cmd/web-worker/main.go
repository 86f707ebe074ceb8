package main

import (
	"context"

	"github.com/marcodiri/micros-chess/internal/pkg/cmd"
	"github.com/marcodiri/micros-chess/internal/web"
	pkgcmd "github.com/marcodiri/micros-chess/pkg/cmd"
	"github.com/marcodiri/micros-chess/pkg/worker"
)

const serviceName = "web-worker"

func main() {
	ctx, cancel := pkgcmd.WithTermSignals(context.Background())
	defer cancel()

	infra := cmd.NewInfrastructureContainer(ctx, cmd.MustLoadConfig(), serviceName)
	defer infra.Close(context.WithoutCancel(ctx))

	logger := infra.Logger.MustLoad()
	defer pkgcmd.HandleAppPanic(ctx, logger)

	container := web.NewDependencyContainer(
		infra.HTTPClientFactory,
		infra.MessageBroker,
		infra.Logger,
	)

	listeners := container.MessageListeners.MustLoad()
	worker.MustRunHub(ctx, logger, listeners[0], listeners[1:]...)
}
