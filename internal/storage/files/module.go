package files

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/salesorders/internal/config"
)

// Module provides the upload store.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (*Store, error) {
	return New(p.Config.UploadDir, p.Logger)
}
