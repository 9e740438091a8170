package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/salesorders/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

func (r *orderRepository) CreateWithItems(ctx context.Context, order model.Order, items []model.LineItem) (*model.OrderDetails, error) {
	const insertOrder = `INSERT INTO orders (filename, original_filename, status) VALUES ($1, $2, $3)
                         RETURNING id, created_at`
	const markProcessed = `UPDATE orders SET status=$1 WHERE id=$2 AND status=$3`

	details := model.OrderDetails{Order: order}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		details.Order.Status = model.OrderStatusPending
		err := tx.QueryRow(ctx, insertOrder, order.Filename, order.OriginalFilename, model.OrderStatusPending).
			Scan(&details.Order.ID, &details.Order.CreatedAt)
		if err != nil {
			return err
		}

		details.LineItems = make([]model.LineItem, 0, len(items))
		for i, item := range items {
			item.OrderID = details.Order.ID
			item.Position = i
			if err := insertLineItemTx(ctx, tx, &item); err != nil {
				return err
			}
			details.LineItems = append(details.LineItems, item)
		}

		if _, err := tx.Exec(ctx, markProcessed, model.OrderStatusProcessed, details.Order.ID, model.OrderStatusPending); err != nil {
			return err
		}
		details.Order.Status = model.OrderStatusProcessed
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &details, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, filename, original_filename, status, created_at FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.Filename, &o.OriginalFilename, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &o, nil
}

// List returns orders most recent first.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT id, filename, original_filename, status, created_at
                   FROM orders ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Filename, &o.OriginalFilename, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, from, to model.OrderStatus) (bool, error) {
	if !from.CanTransition(to) {
		return false, nil
	}
	const query = `UPDATE orders SET status=$1 WHERE id=$2 AND status=$3`
	tag, err := r.storage.pool.Exec(ctx, query, to, id, from)
	if err != nil {
		return false, mapError(err)
	}
	return tag.RowsAffected() == 1, nil
}
