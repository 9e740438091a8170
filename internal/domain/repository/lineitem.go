package repository

import (
	"context"

	"github.com/polkiloo/salesorders/internal/domain/model"
)

// LineItemMutation edits a locked line item in place.
type LineItemMutation func(item *model.LineItem) error

// LineItemRepository describes persistence operations with order line items.
type LineItemRepository interface {
	Create(ctx context.Context, orderID int64, item model.LineItem) (*model.LineItem, error)
	Get(ctx context.Context, orderID, itemID int64) (*model.LineItem, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.LineItem, error)
	// Update locks the row, applies mutate and writes the result back with a recomputed total.
	Update(ctx context.Context, orderID, itemID int64, mutate LineItemMutation) (*model.LineItem, error)
}
