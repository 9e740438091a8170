package extraction

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/salesorders/internal/config"
)

// Module exposes extraction client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.ExtractionServiceAddress, p.Config.ExtractionTimeout, p.Logger)
}
