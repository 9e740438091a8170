package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/salesorders/internal/domain/model"
	"github.com/polkiloo/salesorders/internal/domain/repository"
)

type lineItemRepository struct {
	storage *Storage
}

func insertLineItemTx(ctx context.Context, tx pgx.Tx, item *model.LineItem) error {
	const query = `INSERT INTO line_items (order_id, position, description, quantity, unit_price, total_price,
                                           catalog_match_id, catalog_match_data, confidence_score)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING id`

	item.Recalculate()
	if !item.Matched() {
		item.ClearMatch()
	}
	snapshot, err := encodeSnapshot(item.CatalogMatch)
	if err != nil {
		return err
	}
	return tx.QueryRow(ctx, query,
		item.OrderID, item.Position, item.Description,
		item.Quantity, item.UnitPrice, item.TotalPrice,
		item.CatalogMatchID, snapshot, item.Confidence,
	).Scan(&item.ID)
}

// Create appends the item after the last existing position of the order.
func (r *lineItemRepository) Create(ctx context.Context, orderID int64, item model.LineItem) (*model.LineItem, error) {
	const lockOrder = `SELECT id FROM orders WHERE id=$1 FOR UPDATE`
	const nextPosition = `SELECT COALESCE(MAX(position) + 1, 0) FROM line_items WHERE order_id=$1`

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var id int64
		if err := tx.QueryRow(ctx, lockOrder, orderID).Scan(&id); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, nextPosition, orderID).Scan(&item.Position); err != nil {
			return err
		}
		item.OrderID = orderID
		return insertLineItemTx(ctx, tx, &item)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &item, nil
}

func (r *lineItemRepository) Get(ctx context.Context, orderID, itemID int64) (*model.LineItem, error) {
	const query = `SELECT ` + lineItemColumns + ` FROM line_items WHERE order_id=$1 AND id=$2`
	item, err := scanLineItem(r.storage.pool.QueryRow(ctx, query, orderID, itemID))
	if err != nil {
		return nil, mapError(err)
	}
	return item, nil
}

func (r *lineItemRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.LineItem, error) {
	const query = `SELECT ` + lineItemColumns + ` FROM line_items WHERE order_id=$1 ORDER BY position, id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.LineItem, 0)
	for rows.Next() {
		item, err := scanLineItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *lineItemRepository) Update(ctx context.Context, orderID, itemID int64, mutate repository.LineItemMutation) (*model.LineItem, error) {
	const selectForUpdate = `SELECT ` + lineItemColumns + ` FROM line_items WHERE order_id=$1 AND id=$2 FOR UPDATE`
	const update = `UPDATE line_items
                    SET description=$1, quantity=$2, unit_price=$3, total_price=$4,
                        catalog_match_id=$5, catalog_match_data=$6, confidence_score=$7
                    WHERE order_id=$8 AND id=$9`

	var updated *model.LineItem
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		item, err := scanLineItem(tx.QueryRow(ctx, selectForUpdate, orderID, itemID))
		if err != nil {
			return err
		}
		if err := mutate(item); err != nil {
			return err
		}

		item.Recalculate()
		if !item.Matched() {
			item.ClearMatch()
		}
		snapshot, err := encodeSnapshot(item.CatalogMatch)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, update,
			item.Description, item.Quantity, item.UnitPrice, item.TotalPrice,
			item.CatalogMatchID, snapshot, item.Confidence,
			orderID, itemID,
		)
		if err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}
