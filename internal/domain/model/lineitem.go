package model

import "github.com/shopspring/decimal"

// LineItem is a single product row of an order.
type LineItem struct {
	ID             int64
	OrderID        int64
	Position       int
	Description    string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	TotalPrice     decimal.Decimal
	CatalogMatchID *string
	CatalogMatch   *CatalogMatch
	Confidence     float64
}

// Recalculate derives TotalPrice from Quantity and UnitPrice.
func (li *LineItem) Recalculate() {
	li.TotalPrice = li.Quantity.Mul(li.UnitPrice)
}

// Matched reports whether the item references a catalog entry.
func (li LineItem) Matched() bool {
	return li.CatalogMatchID != nil
}

// SetMatch attaches a catalog match with its snapshot and confidence.
func (li *LineItem) SetMatch(id string, snapshot CatalogMatch, confidence float64) {
	li.CatalogMatchID = &id
	li.CatalogMatch = &snapshot
	li.Confidence = confidence
}

// ClearMatch drops the catalog reference together with its snapshot.
func (li *LineItem) ClearMatch() {
	li.CatalogMatchID = nil
	li.CatalogMatch = nil
	li.Confidence = 0
}

// LineItemPatch lists editable fields. Nil fields stay unchanged.
type LineItemPatch struct {
	Description *string
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
}

// Empty reports whether the patch changes nothing.
func (p LineItemPatch) Empty() bool {
	return p.Description == nil && p.Quantity == nil && p.UnitPrice == nil
}

// Apply copies the patched fields onto item.
func (p LineItemPatch) Apply(item *LineItem) {
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		item.UnitPrice = *p.UnitPrice
	}
}
