package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/salesorders/internal/config"
)

// Module loads the product catalog once at startup.
var Module = fx.Provide(newCatalog)

type catalogParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newCatalog(p catalogParams) (*Catalog, error) {
	c, err := Load(p.Config.CatalogFile)
	if err != nil {
		return nil, err
	}
	p.Logger.Info("catalog loaded", slog.Int("items", c.Len()), slog.String("file", p.Config.CatalogFile))
	return c, nil
}
