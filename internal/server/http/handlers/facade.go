package handlers

import (
	"context"

	"github.com/polkiloo/salesorders/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Upload(ctx context.Context, filename string, data []byte) (*model.OrderDetails, error)
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, orderID int64) (*model.OrderDetails, error)
	MatchAll(ctx context.Context, orderID int64) (*model.OrderDetails, error)
	Export(ctx context.Context, orderID int64) ([]byte, string, error)
}

// LineItemFacade provides line item edits and matching.
type LineItemFacade interface {
	UpdateLineItem(ctx context.Context, orderID, itemID int64, patch model.LineItemPatch) (*model.LineItem, error)
	RequestMatch(ctx context.Context, orderID, itemID int64) (*model.LineItem, error)
	SelectMatch(ctx context.Context, orderID, itemID int64, catalogItemID string) (*model.LineItem, error)
	ClearMatch(ctx context.Context, orderID, itemID int64) (*model.LineItem, error)
}

// CatalogFacade lists catalog entries.
type CatalogFacade interface {
	Catalog() []model.CatalogItem
}

// FileFacade resolves stored uploads.
type FileFacade interface {
	FilePath(name string) (string, error)
}

// HealthFacade reports backing store availability.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// SalesOrderFacade aggregates the full set of operations used across handlers.
type SalesOrderFacade interface {
	OrderFacade
	LineItemFacade
	CatalogFacade
	FileFacade
	HealthFacade
}
