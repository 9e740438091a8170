package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/polkiloo/salesorders/internal/di"
	"github.com/polkiloo/salesorders/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		logger.FxEvents,
		di.Module(),
	)

	code := run(ctx, app)
	stop()
	os.Exit(code)
}
