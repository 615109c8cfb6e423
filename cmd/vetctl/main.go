package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"vetmanager-api-gateway/internal/app"
	"vetmanager-api-gateway/internal/cli"
	"vetmanager-api-gateway/internal/platform/config"
	"vetmanager-api-gateway/internal/platform/logger"
	"vetmanager-api-gateway/internal/ports/gateway"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// logs a stderr para no mezclarlos con la salida json/yaml
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: logger.ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    "vetctl",
		Out:    os.Stderr,
	})

	open := func(ctx context.Context) (gateway.Gateway, func(), error) {
		cfg, err := config.FromEnv()
		if err != nil {
			return nil, nil, err
		}
		a, err := app.Build(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return a.Gateway, a.Close, nil
	}

	err := cli.NewRootCommand(open).ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	stop()
	os.Exit(cli.GetExitCode(err))
}
