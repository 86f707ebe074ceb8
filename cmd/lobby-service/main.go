package main

import (
	"context"

	"github.com/marcodiri/micros-chess/internal/lobby"
	"github.com/marcodiri/micros-chess/internal/pkg/cmd"
	pkgcmd "github.com/marcodiri/micros-chess/pkg/cmd"
	"github.com/marcodiri/micros-chess/pkg/worker"
)

const serviceName = "lobby-service"

func main() {
	ctx, cancel := pkgcmd.WithTermSignals(context.Background())
	defer cancel()

	infra := cmd.NewInfrastructureContainer(ctx, cmd.MustLoadConfig(), serviceName)
	defer infra.Close(context.WithoutCancel(ctx))

	logger := infra.Logger.MustLoad()
	defer pkgcmd.HandleAppPanic(ctx, logger)

	container := lobby.NewDependencyContainer(
		infra.EventStore,
		infra.Tracer,
		infra.Logger,
	)

	httpServer := infra.MustInitHTTPServer(container.HTTPServerOptions()...)
	container.MustRegisterHTTPHandlers(httpServer)

	worker.MustRunHub(ctx, logger, httpServer.Listener)
}
