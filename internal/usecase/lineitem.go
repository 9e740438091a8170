package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/salesorders/internal/domain/errors"
	"github.com/polkiloo/salesorders/internal/domain/model"
	"github.com/polkiloo/salesorders/internal/domain/repository"
)

// LineItemUseCase guards line item writes.
type LineItemUseCase struct {
	items repository.LineItemRepository
}

// NewLineItemUseCase constructs LineItemUseCase.
func NewLineItemUseCase(items repository.LineItemRepository) *LineItemUseCase {
	return &LineItemUseCase{items: items}
}

// Create appends a raw item to the order.
func (u *LineItemUseCase) Create(ctx context.Context, orderID int64, raw model.ExtractedItem) (*model.LineItem, error) {
	if err := validateAmounts(raw.Quantity, raw.UnitPrice); err != nil {
		return nil, err
	}
	item := model.LineItem{
		Description: raw.Description,
		Quantity:    raw.Quantity,
		UnitPrice:   raw.UnitPrice,
	}
	item.Recalculate()
	return u.items.Create(ctx, orderID, item)
}

// Get returns a single item of the order.
func (u *LineItemUseCase) Get(ctx context.Context, orderID, itemID int64) (*model.LineItem, error) {
	return u.items.Get(ctx, orderID, itemID)
}

// ListByOrder returns items in insertion order.
func (u *LineItemUseCase) ListByOrder(ctx context.Context, orderID int64) ([]model.LineItem, error) {
	return u.items.ListByOrder(ctx, orderID)
}

// Update applies a partial edit. The total is always recomputed from the
// stored operands, whatever the caller sent.
func (u *LineItemUseCase) Update(ctx context.Context, orderID, itemID int64, patch model.LineItemPatch) (*model.LineItem, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("%w: no editable fields provided", domainErrors.ErrValidation)
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return nil, fmt.Errorf("%w: description must not be empty", domainErrors.ErrValidation)
	}
	if patch.Quantity != nil && patch.Quantity.IsNegative() {
		return nil, fmt.Errorf("%w: quantity must not be negative", domainErrors.ErrValidation)
	}
	if patch.UnitPrice != nil && patch.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", domainErrors.ErrValidation)
	}

	return u.items.Update(ctx, orderID, itemID, func(item *model.LineItem) error {
		patch.Apply(item)
		return nil
	})
}

// SetMatch attaches a catalog match. A nil matchID clears the match.
func (u *LineItemUseCase) SetMatch(ctx context.Context, orderID, itemID int64, matchID *string, snapshot *model.CatalogMatch, confidence float64) (*model.LineItem, error) {
	if matchID == nil {
		return u.ClearMatch(ctx, orderID, itemID)
	}
	if err := validateConfidence(confidence); err != nil {
		return nil, err
	}
	snap := model.CatalogMatch{ID: *matchID, Name: *matchID}
	if snapshot != nil {
		snap = *snapshot
	}

	return u.items.Update(ctx, orderID, itemID, func(item *model.LineItem) error {
		item.SetMatch(*matchID, snap, confidence)
		return nil
	})
}

// ClearMatch removes the catalog match and resets confidence.
func (u *LineItemUseCase) ClearMatch(ctx context.Context, orderID, itemID int64) (*model.LineItem, error) {
	return u.items.Update(ctx, orderID, itemID, func(item *model.LineItem) error {
		item.ClearMatch()
		return nil
	})
}
