package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CatalogMatchResponse is the catalog snapshot stored with a line item.
type CatalogMatchResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// LineItemResponse represents a single order row.
type LineItemResponse struct {
	ID               int64                 `json:"id"`
	OrderID          int64                 `json:"order_id"`
	Position         int                   `json:"position"`
	Description      string                `json:"description"`
	Quantity         json.Number           `json:"quantity"`
	UnitPrice        json.Number           `json:"unit_price"`
	TotalPrice       json.Number           `json:"total_price"`
	CatalogMatchID   *string               `json:"catalog_match_id"`
	CatalogMatchData *CatalogMatchResponse `json:"catalog_match_data"`
	ConfidenceScore  float64               `json:"confidence_score"`
	Warning          string                `json:"warning,omitempty"`
}

// UpdateLineItemRequest lists editable fields. Anything else in the body is ignored.
type UpdateLineItemRequest struct {
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

// MatchRequest asks for a catalog match of one item. Without
// catalog_item_id the matching service is consulted.
type MatchRequest struct {
	ItemID        int64   `json:"item_id"`
	CatalogItemID *string `json:"catalog_item_id"`
}
