package app

import (
	"context"

	"github.com/polkiloo/salesorders/internal/domain/model"
	"github.com/polkiloo/salesorders/internal/usecase"
)

// CatalogSource lists catalog entries.
type CatalogSource interface {
	Items() []model.CatalogItem
}

// FileLocator resolves stored uploads to paths on disk.
type FileLocator interface {
	Path(name string) (string, error)
}

// HealthChecker reports backing store availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// SalesOrderFacade is the single entry point used by HTTP handlers.
type SalesOrderFacade struct {
	orders  *usecase.OrderUseCase
	catalog CatalogSource
	files   FileLocator
	health  HealthChecker
}

func NewSalesOrderFacade(orders *usecase.OrderUseCase, catalog CatalogSource, files FileLocator, health HealthChecker) *SalesOrderFacade {
	return &SalesOrderFacade{orders: orders, catalog: catalog, files: files, health: health}
}

func (f *SalesOrderFacade) Upload(ctx context.Context, filename string, data []byte) (*model.OrderDetails, error) {
	return f.orders.Ingest(ctx, filename, data)
}

func (f *SalesOrderFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *SalesOrderFacade) Order(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *SalesOrderFacade) UpdateLineItem(ctx context.Context, orderID, itemID int64, patch model.LineItemPatch) (*model.LineItem, error) {
	return f.orders.UpdateLineItem(ctx, orderID, itemID, patch)
}

func (f *SalesOrderFacade) RequestMatch(ctx context.Context, orderID, itemID int64) (*model.LineItem, error) {
	return f.orders.RequestMatch(ctx, orderID, itemID)
}

func (f *SalesOrderFacade) SelectMatch(ctx context.Context, orderID, itemID int64, catalogItemID string) (*model.LineItem, error) {
	return f.orders.SelectMatch(ctx, orderID, itemID, catalogItemID)
}

func (f *SalesOrderFacade) ClearMatch(ctx context.Context, orderID, itemID int64) (*model.LineItem, error) {
	return f.orders.ClearMatch(ctx, orderID, itemID)
}

func (f *SalesOrderFacade) MatchAll(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	return f.orders.MatchAll(ctx, orderID)
}

func (f *SalesOrderFacade) Export(ctx context.Context, orderID int64) ([]byte, string, error) {
	return f.orders.Export(ctx, orderID)
}

func (f *SalesOrderFacade) Catalog() []model.CatalogItem {
	return f.catalog.Items()
}

func (f *SalesOrderFacade) FilePath(name string) (string, error) {
	return f.files.Path(name)
}

func (f *SalesOrderFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
