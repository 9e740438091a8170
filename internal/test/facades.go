package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/salesorders/internal/domain/errors"
	"github.com/polkiloo/salesorders/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	UploadFn   func(context.Context, string, []byte) (*model.OrderDetails, error)
	OrdersFn   func(context.Context) ([]model.Order, error)
	OrderFn    func(context.Context, int64) (*model.OrderDetails, error)
	MatchAllFn func(context.Context, int64) (*model.OrderDetails, error)
	ExportFn   func(context.Context, int64) ([]byte, string, error)
}

// Upload delegates to provided function or returns an order with no items.
func (s OrderFacadeStub) Upload(ctx context.Context, filename string, data []byte) (*model.OrderDetails, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, filename, data)
	}
	return &model.OrderDetails{Order: model.Order{ID: 1, OriginalFilename: filename, Status: model.OrderStatusProcessed}}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusProcessed}}, nil
}

// Order returns a single order.
func (s OrderFacadeStub) Order(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return &model.OrderDetails{Order: model.Order{ID: orderID}}, nil
}

// MatchAll returns the order unchanged by default.
func (s OrderFacadeStub) MatchAll(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	if s.MatchAllFn != nil {
		return s.MatchAllFn(ctx, orderID)
	}
	return &model.OrderDetails{Order: model.Order{ID: orderID}}, nil
}

// Export returns a header-only document by default.
func (s OrderFacadeStub) Export(ctx context.Context, orderID int64) ([]byte, string, error) {
	if s.ExportFn != nil {
		return s.ExportFn(ctx, orderID)
	}
	return []byte("Description,Quantity,Unit Price,Total Price,Catalog Match,Confidence\n"), "order.csv", nil
}

// LineItemFacadeStub simulates line item operations.
type LineItemFacadeStub struct {
	UpdateFn       func(context.Context, int64, int64, model.LineItemPatch) (*model.LineItem, error)
	RequestMatchFn func(context.Context, int64, int64) (*model.LineItem, error)
	SelectMatchFn  func(context.Context, int64, int64, string) (*model.LineItem, error)
	ClearMatchFn   func(context.Context, int64, int64) (*model.LineItem, error)
}

// UpdateLineItem applies the patch to an empty item by default.
func (s LineItemFacadeStub) UpdateLineItem(ctx context.Context, orderID, itemID int64, patch model.LineItemPatch) (*model.LineItem, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, itemID, patch)
	}
	item := &model.LineItem{ID: itemID, OrderID: orderID}
	patch.Apply(item)
	item.Recalculate()
	return item, nil
}

// RequestMatch returns an unmatched item by default.
func (s LineItemFacadeStub) RequestMatch(ctx context.Context, orderID, itemID int64) (*model.LineItem, error) {
	if s.RequestMatchFn != nil {
		return s.RequestMatchFn(ctx, orderID, itemID)
	}
	return &model.LineItem{ID: itemID, OrderID: orderID}, nil
}

// SelectMatch assigns the catalog id with full confidence by default.
func (s LineItemFacadeStub) SelectMatch(ctx context.Context, orderID, itemID int64, catalogItemID string) (*model.LineItem, error) {
	if s.SelectMatchFn != nil {
		return s.SelectMatchFn(ctx, orderID, itemID, catalogItemID)
	}
	item := &model.LineItem{ID: itemID, OrderID: orderID}
	item.SetMatch(catalogItemID, model.CatalogMatch{ID: catalogItemID, Name: catalogItemID}, 1)
	return item, nil
}

// ClearMatch returns an unmatched item by default.
func (s LineItemFacadeStub) ClearMatch(ctx context.Context, orderID, itemID int64) (*model.LineItem, error) {
	if s.ClearMatchFn != nil {
		return s.ClearMatchFn(ctx, orderID, itemID)
	}
	return &model.LineItem{ID: itemID, OrderID: orderID}, nil
}

// CatalogFacadeStub returns fixed catalog entries.
type CatalogFacadeStub struct {
	Items []model.CatalogItem
}

// Catalog returns the configured entries.
func (s CatalogFacadeStub) Catalog() []model.CatalogItem {
	return s.Items
}

// FileFacadeStub resolves names from a fixed table.
type FileFacadeStub struct {
	Paths map[string]string
}

// FilePath looks the name up in Paths.
func (s FileFacadeStub) FilePath(name string) (string, error) {
	if p, ok := s.Paths[name]; ok {
		return p, nil
	}
	return "", domainErrors.ErrNotFound
}

// HealthCheckerStub reports Err from both health interfaces.
type HealthCheckerStub struct {
	mu  sync.Mutex
	Err error
}

// HealthCheck returns configured error.
func (s *HealthCheckerStub) HealthCheck(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Err
}

// Health returns configured error.
func (s *HealthCheckerStub) Health(ctx context.Context) error {
	return s.HealthCheck(ctx)
}

// SalesOrderFacadeStub aggregates stubs for router tests.
type SalesOrderFacadeStub struct {
	OrderFacadeStub
	LineItemFacadeStub
	CatalogFacadeStub
	FileFacadeStub
	*HealthCheckerStub
}
