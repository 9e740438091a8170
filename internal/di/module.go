package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/salesorders/internal/adapter/extraction"
	"github.com/polkiloo/salesorders/internal/adapter/matcher"
	"github.com/polkiloo/salesorders/internal/app"
	"github.com/polkiloo/salesorders/internal/catalog"
	"github.com/polkiloo/salesorders/internal/config"
	"github.com/polkiloo/salesorders/internal/logger"
	"github.com/polkiloo/salesorders/internal/server/http/router"
	"github.com/polkiloo/salesorders/internal/storage/files"
	"github.com/polkiloo/salesorders/internal/storage/postgres"
	"github.com/polkiloo/salesorders/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		files.Module,
		catalog.Module,
		extraction.Module,
		matcher.Module,
		fx.Provide(
			func(c extraction.Client) usecase.Extractor { return c },
			func(c matcher.Client) usecase.Matcher { return c },
			func(c *catalog.Catalog) usecase.Catalog { return c },
			func(s *files.Store) usecase.FileStore { return s },
		),
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
