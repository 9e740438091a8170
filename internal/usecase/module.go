package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/salesorders/internal/config"
	"github.com/polkiloo/salesorders/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewLineItemUseCase,
	newOrderUseCase,
)

type orderParams struct {
	fx.In

	Orders    repository.OrderRepository
	Lines     *LineItemUseCase
	Extractor Extractor
	Matcher   Matcher
	Catalog   Catalog
	Files     FileStore
	Logger    *slog.Logger
	Config    *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Lines, p.Extractor, p.Matcher, p.Catalog, p.Files, p.Logger, OrderOptions{
		MatchTimeout: p.Config.MatchTimeout,
		AutoMatch:    p.Config.AutoMatch,
	})
}
