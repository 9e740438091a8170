package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/salesorders/internal/app"
	"github.com/polkiloo/salesorders/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	func(f *app.SalesOrderFacade) handlers.SalesOrderFacade { return f },
	Setup,
)
