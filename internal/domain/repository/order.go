package repository

import (
	"context"

	"github.com/polkiloo/salesorders/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// CreateWithItems stores the order and its items and marks it processed in one transaction.
	CreateWithItems(ctx context.Context, order model.Order, items []model.LineItem) (*model.OrderDetails, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	// UpdateStatus moves the order from one status to another. It reports false when the order was not in from.
	UpdateStatus(ctx context.Context, id int64, from, to model.OrderStatus) (bool, error)
}
