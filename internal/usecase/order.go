package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/salesorders/internal/domain/errors"
	"github.com/polkiloo/salesorders/internal/domain/model"
	"github.com/polkiloo/salesorders/internal/domain/repository"
	"github.com/polkiloo/salesorders/internal/export"
)

// Extractor turns an uploaded document into raw line items.
type Extractor interface {
	Extract(ctx context.Context, filename string, data []byte) ([]model.ExtractedItem, error)
}

// Matcher proposes catalog matches for descriptions.
type Matcher interface {
	MatchBatch(ctx context.Context, queries []string) (map[string][]model.MatchCandidate, error)
}

// Catalog resolves catalog entries by id or name.
type Catalog interface {
	Lookup(key string) (model.CatalogItem, bool)
}

// FileStore keeps uploaded documents.
type FileStore interface {
	Save(originalName string, data []byte) (string, error)
	Remove(name string) error
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders       repository.OrderRepository
	lines        *LineItemUseCase
	extractor    Extractor
	matcher      Matcher
	catalog      Catalog
	files        FileStore
	logger       *slog.Logger
	matchTimeout time.Duration
	autoMatch    bool
}

// OrderOptions tunes matching behaviour.
type OrderOptions struct {
	MatchTimeout time.Duration
	AutoMatch    bool
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	lines *LineItemUseCase,
	extractor Extractor,
	matcher Matcher,
	catalog Catalog,
	files FileStore,
	logger *slog.Logger,
	opts OrderOptions,
) *OrderUseCase {
	return &OrderUseCase{
		orders:       orders,
		lines:        lines,
		extractor:    extractor,
		matcher:      matcher,
		catalog:      catalog,
		files:        files,
		logger:       logger,
		matchTimeout: opts.MatchTimeout,
		autoMatch:    opts.AutoMatch,
	}
}

// Ingest validates and stores the document, extracts its items and persists
// the order. No order row survives a failed ingestion.
func (u *OrderUseCase) Ingest(ctx context.Context, originalFilename string, data []byte) (*model.OrderDetails, error) {
	if err := ValidatePDF(data); err != nil {
		return nil, err
	}

	stored, err := u.files.Save(originalFilename, data)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	details, err := u.ingestStored(ctx, stored, originalFilename, data)
	if err != nil {
		if rmErr := u.files.Remove(stored); rmErr != nil {
			u.logger.Warn("failed to remove upload", slog.String("file", stored), slog.Any("error", rmErr))
		}
		return nil, err
	}

	u.logger.Info("order ingested",
		slog.Int64("order_id", details.Order.ID),
		slog.String("file", stored),
		slog.Int("items", len(details.LineItems)))

	if u.autoMatch {
		u.matchItems(ctx, details)
	}
	return details, nil
}

func (u *OrderUseCase) ingestStored(ctx context.Context, stored, originalFilename string, data []byte) (*model.OrderDetails, error) {
	extracted, err := u.extractor.Extract(ctx, originalFilename, data)
	if err != nil {
		if errors.Is(err, domainErrors.ErrIngestion) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrIngestion, err)
	}
	if len(extracted) == 0 {
		return nil, fmt.Errorf("%w: no line items found in document", domainErrors.ErrIngestion)
	}

	items := make([]model.LineItem, 0, len(extracted))
	for _, raw := range extracted {
		if err := validateAmounts(raw.Quantity, raw.UnitPrice); err != nil {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrIngestion, err)
		}
		item := model.LineItem{Description: raw.Description, Quantity: raw.Quantity, UnitPrice: raw.UnitPrice}
		item.Recalculate()
		items = append(items, item)
	}

	order := model.Order{
		Filename:         stored,
		OriginalFilename: originalFilename,
		Status:           model.OrderStatusPending,
	}
	details, err := u.orders.CreateWithItems(ctx, order, items)
	if err != nil {
		return nil, fmt.Errorf("%w: persist order: %v", domainErrors.ErrIngestion, err)
	}
	return details, nil
}

// Get returns the order with its items.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := u.lines.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &model.OrderDetails{Order: *order, LineItems: items}, nil
}

// List returns orders most recent first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// ComputeTotal sums line totals of the order, rounded to cents.
func (u *OrderUseCase) ComputeTotal(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	details, err := u.Get(ctx, orderID)
	if err != nil {
		return decimal.Zero, err
	}
	return details.Total(), nil
}

// RequestMatch asks the matcher for the item's description. When no match
// can be obtained the unchanged item is returned with ErrMatchUnavailable.
func (u *OrderUseCase) RequestMatch(ctx context.Context, orderID, itemID int64) (*model.LineItem, error) {
	item, err := u.lines.Get(ctx, orderID, itemID)
	if err != nil {
		return nil, err
	}

	results, err := u.match(ctx, []string{item.Description})
	if err != nil {
		u.logger.Warn("matching failed", slog.Int64("item_id", itemID), slog.Any("error", err))
		return item, err
	}
	best, ok := bestCandidate(results[item.Description])
	if !ok {
		return item, fmt.Errorf("%w: no catalog match for %q", domainErrors.ErrMatchUnavailable, item.Description)
	}

	id, snapshot := u.snapshot(best.Match)
	return u.lines.SetMatch(ctx, orderID, itemID, &id, &snapshot, clampScore(best.Score))
}

// SelectMatch assigns a catalog entry chosen by the user.
func (u *OrderUseCase) SelectMatch(ctx context.Context, orderID, itemID int64, catalogItemID string) (*model.LineItem, error) {
	entry, ok := u.catalog.Lookup(catalogItemID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown catalog item %q", domainErrors.ErrValidation, catalogItemID)
	}
	snapshot := entry.Snapshot()
	return u.lines.SetMatch(ctx, orderID, itemID, &entry.ID, &snapshot, 1)
}

// ClearMatch drops the match of the item.
func (u *OrderUseCase) ClearMatch(ctx context.Context, orderID, itemID int64) (*model.LineItem, error) {
	return u.lines.ClearMatch(ctx, orderID, itemID)
}

// UpdateLineItem applies a partial edit to an item.
func (u *OrderUseCase) UpdateLineItem(ctx context.Context, orderID, itemID int64, patch model.LineItemPatch) (*model.LineItem, error) {
	return u.lines.Update(ctx, orderID, itemID, patch)
}

// MatchAll runs a batch match over every item of the order.
func (u *OrderUseCase) MatchAll(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	details, err := u.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := u.matchItems(ctx, details); err != nil {
		return details, err
	}
	return details, nil
}

// Export renders the order as CSV and marks it exported.
func (u *OrderUseCase) Export(ctx context.Context, orderID int64) ([]byte, string, error) {
	details, err := u.Get(ctx, orderID)
	if err != nil {
		return nil, "", err
	}

	data, err := export.Encode(details.LineItems)
	if err != nil {
		return nil, "", fmt.Errorf("encode export: %w", err)
	}

	if details.Order.Status == model.OrderStatusProcessed {
		if _, err := u.orders.UpdateStatus(ctx, orderID, model.OrderStatusProcessed, model.OrderStatusExported); err != nil {
			u.logger.Warn("failed to record export", slog.Int64("order_id", orderID), slog.Any("error", err))
		}
	}
	return data, export.Filename(orderID), nil
}

// matchItems updates details in place. Failures are logged and returned but never undo the order.
func (u *OrderUseCase) matchItems(ctx context.Context, details *model.OrderDetails) error {
	if len(details.LineItems) == 0 {
		return nil
	}

	queries := make([]string, 0, len(details.LineItems))
	seen := make(map[string]struct{}, len(details.LineItems))
	for _, item := range details.LineItems {
		if _, ok := seen[item.Description]; ok {
			continue
		}
		seen[item.Description] = struct{}{}
		queries = append(queries, item.Description)
	}

	results, err := u.match(ctx, queries)
	if err != nil {
		u.logger.Warn("batch matching failed", slog.Int64("order_id", details.Order.ID), slog.Any("error", err))
		return err
	}

	matched := 0
	for i, item := range details.LineItems {
		best, ok := bestCandidate(results[item.Description])
		if !ok {
			continue
		}
		id, snapshot := u.snapshot(best.Match)
		updated, err := u.lines.SetMatch(ctx, details.Order.ID, item.ID, &id, &snapshot, clampScore(best.Score))
		if err != nil {
			u.logger.Warn("failed to store match", slog.Int64("item_id", item.ID), slog.Any("error", err))
			continue
		}
		details.LineItems[i] = *updated
		matched++
	}

	u.logger.Info("order matched",
		slog.Int64("order_id", details.Order.ID),
		slog.Int("matched", matched),
		slog.Int("items", len(details.LineItems)))
	return nil
}

func (u *OrderUseCase) match(ctx context.Context, queries []string) (map[string][]model.MatchCandidate, error) {
	if u.matchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.matchTimeout)
		defer cancel()
	}
	results, err := u.matcher.MatchBatch(ctx, queries)
	if err != nil {
		if errors.Is(err, domainErrors.ErrMatchUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrMatchUnavailable, err)
	}
	return results, nil
}

// snapshot resolves a matcher answer against the catalog. Unknown answers are
// kept verbatim.
func (u *OrderUseCase) snapshot(match string) (string, model.CatalogMatch) {
	if entry, ok := u.catalog.Lookup(match); ok {
		return entry.ID, entry.Snapshot()
	}
	return match, model.CatalogMatch{ID: match, Name: match, Description: match}
}

func bestCandidate(candidates []model.MatchCandidate) (model.MatchCandidate, bool) {
	for _, c := range candidates {
		if c.Match != "" {
			return c, true
		}
	}
	return model.MatchCandidate{}, false
}

func clampScore(score float64) float64 {
	switch {
	case math.IsNaN(score) || score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}
