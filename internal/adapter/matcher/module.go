package matcher

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/salesorders/internal/config"
)

// Module exposes matching client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.MatcherServiceAddress, p.Config.MatchTimeout, p.Logger)
}
