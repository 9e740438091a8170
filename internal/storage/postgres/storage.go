package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/salesorders/internal/domain/errors"
	"github.com/polkiloo/salesorders/internal/domain/model"
	"github.com/polkiloo/salesorders/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the order repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// LineItems returns the line item repository.
func (s *Storage) LineItems() repository.LineItemRepository {
	return &lineItemRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            filename TEXT UNIQUE NOT NULL,
            original_filename TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS line_items (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            position INTEGER NOT NULL,
            description TEXT NOT NULL,
            quantity NUMERIC NOT NULL CHECK (quantity >= 0),
            unit_price NUMERIC NOT NULL CHECK (unit_price >= 0),
            total_price NUMERIC NOT NULL,
            catalog_match_id TEXT,
            catalog_match_data JSONB,
            confidence_score DOUBLE PRECISION NOT NULL DEFAULT 0
                CHECK (confidence_score >= 0 AND confidence_score <= 1)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC, id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_line_items_order ON line_items(order_id, position, id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

// mapError translates driver errors into domain errors. Domain errors pass through.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return domainErrors.ErrAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return domainErrors.ErrNotFound
	case pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %s", domainErrors.ErrValidation, pgErr.Message)
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
		return fmt.Errorf("%w: %s", domainErrors.ErrConflict, pgErr.Message)
	}
	return err
}

const lineItemColumns = `id, order_id, position, description, quantity, unit_price, total_price,
       catalog_match_id, catalog_match_data, confidence_score`

func scanLineItem(row pgx.Row) (*model.LineItem, error) {
	var (
		item     model.LineItem
		snapshot []byte
	)
	err := row.Scan(
		&item.ID, &item.OrderID, &item.Position, &item.Description,
		&item.Quantity, &item.UnitPrice, &item.TotalPrice,
		&item.CatalogMatchID, &snapshot, &item.Confidence,
	)
	if err != nil {
		return nil, err
	}
	if len(snapshot) > 0 {
		var match model.CatalogMatch
		if err := json.Unmarshal(snapshot, &match); err != nil {
			return nil, fmt.Errorf("decode catalog match: %w", err)
		}
		item.CatalogMatch = &match
	}
	return &item, nil
}

// encodeSnapshot returns nil for a missing snapshot so the column stays NULL.
func encodeSnapshot(match *model.CatalogMatch) (any, error) {
	if match == nil {
		return nil, nil
	}
	data, err := json.Marshal(match)
	if err != nil {
		return nil, fmt.Errorf("encode catalog match: %w", err)
	}
	return data, nil
}
